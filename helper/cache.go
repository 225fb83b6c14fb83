package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"travel_manager/config"

	"github.com/redis/go-redis/v9"
)

// Reference-entity lists (countries, cities, airports, categories, facilities) are
// low churn and read on every admin screen, so their list responses are cached in
// redis keyed per collection and dropped on any mutation of that collection.

var cacheClient *redis.Client

const listCacheTTL = 5 * time.Minute

func InitCache() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, list cache disabled")
		return
	}
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
}

// CacheGetList loads a cached list response. Returns false on miss, on a disabled
// cache, or on any redis error (a broken cache never fails a read).
func CacheGetList(ctx context.Context, key string, dst any) bool {
	if cacheClient == nil {
		return false
	}
	v, err := cacheClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
		return false
	}
	return json.Unmarshal(v, dst) == nil
}

func CacheSetList(ctx context.Context, key string, v any) {
	if cacheClient == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := cacheClient.Set(ctx, key, b, listCacheTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// CacheInvalidate drops every cached page of a collection after a mutation.
func CacheInvalidate(ctx context.Context, collection string) {
	if cacheClient == nil {
		return
	}
	iter := cacheClient.Scan(ctx, 0, collection+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := cacheClient.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache del %s: %v", iter.Val(), err)
		}
	}
}
