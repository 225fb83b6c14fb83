package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCountryCities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			CountryName string `json:"countryName"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Italy", req.CountryName)

		json.NewEncoder(w).Encode(GeneratedCountryCities{
			Country: GeneratedCountry{Name: "Italy", Code: "IT", Description: "Southern Europe"},
			Cities: []GeneratedCity{
				{Name: "Rome", Description: "Capital"},
				{Name: "Milan", Description: "Fashion and finance"},
			},
		})
	}))
	defer server.Close()

	t.Setenv("AI_API_URL", server.URL)
	t.Setenv("AI_API_KEY", "test-key")

	result, err := GenerateCountryCities(context.Background(), "Italy")
	require.NoError(t, err)
	assert.Equal(t, "IT", result.Country.Code)
	require.Len(t, result.Cities, 2)
	assert.Equal(t, "Rome", result.Cities[0].Name)
}

func TestGenerateCountryCitiesServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("AI_API_URL", server.URL)

	_, err := GenerateCountryCities(context.Background(), "Italy")
	assert.Error(t, err)
}

func TestGenerateCountryCitiesMissingCountry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cities": []}`))
	}))
	defer server.Close()

	t.Setenv("AI_API_URL", server.URL)

	_, err := GenerateCountryCities(context.Background(), "Italy")
	assert.Error(t, err)
}

func TestGenerateCountryCitiesNotConfigured(t *testing.T) {
	t.Setenv("AI_API_URL", "")

	_, err := GenerateCountryCities(context.Background(), "Italy")
	assert.Error(t, err)
}
