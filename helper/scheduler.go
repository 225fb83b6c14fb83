package helper

import (
	"log"
	"time"

	"travel_manager/database"
	"travel_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var packageScheduler gocron.Scheduler

// AutoExpirePackages deactivates packages whose travel window has closed.
func AutoExpirePackages() {
	db := database.DB
	result := db.Model(&model.Package{}).
		Where("travel_end_date IS NOT NULL").
		Where("travel_end_date < ?", time.Now()).
		Where("active = ?", true).
		Update("active", false)
	if result.Error != nil {
		log.Println("failed to expire packages:", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("expired %d packages", result.RowsAffected)
	}
}

func StartPackageExpiryScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	packageScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(AutoExpirePackages),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("package expiry scheduler started (00:10)")
}

func StopPackageExpiryScheduler() {
	if packageScheduler != nil {
		_ = packageScheduler.Shutdown()
	}
}
