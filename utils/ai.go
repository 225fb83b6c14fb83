package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// GeneratedCountry and GeneratedCity mirror the JSON shape of the generation service.
type GeneratedCountry struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type GeneratedCity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GeneratedCountryCities struct {
	Country GeneratedCountry `json:"country"`
	Cities  []GeneratedCity  `json:"cities"`
}

var aiClient = &http.Client{Timeout: 30 * time.Second}

// GenerateCountryCities asks the external generation endpoint for a country record
// plus its major cities. The caller merges the result into the admin lists.
func GenerateCountryCities(ctx context.Context, countryName string) (*GeneratedCountryCities, error) {
	apiURL := os.Getenv("AI_API_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("AI_API_URL not set")
	}

	payload, err := json.Marshal(generateRequest{CountryName: countryName})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if key := os.Getenv("AI_API_KEY"); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := aiClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach generation service: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(body))
	}

	var result GeneratedCountryCities
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("cannot parse generation response: %w", err)
	}
	if result.Country.Name == "" {
		return nil, fmt.Errorf("generation response missing country")
	}
	return &result, nil
}

type generateRequest struct {
	CountryName string `json:"countryName"`
}
