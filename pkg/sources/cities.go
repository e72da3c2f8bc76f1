// Package sources fetches the remote data the atlas is built from.
package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

var (
	// ErrNetwork covers transport failures, unexpected statuses and bodies
	// that are not the expected JSON document.
	ErrNetwork = errors.New("countries request failed")
	// ErrAPI is returned when the API answers with "error": true.
	ErrAPI = fmt.Errorf("%w: api reported an error", ErrNetwork)
)

type Country struct {
	Country string   `json:"country"`
	ISO2    string   `json:"iso2"`
	ISO3    string   `json:"iso3,omitempty"`
	Cities  []string `json:"cities"`
}

type CountriesResponse struct {
	Error bool      `json:"error"`
	Msg   string    `json:"msg,omitempty"`
	Data  []Country `json:"data"`
}

// FlagURL returns the flag image for a two letter country code.
func FlagURL(iso2 string) string {
	return fmt.Sprintf(FlagURLTemplate, iso2)
}

// FetchCountries performs exactly one GET against baseURL+CountriesEndpoint.
// There is no retry and no client-side timeout; ctx is the only way to stop it.
func FetchCountries(ctx context.Context, client *http.Client, baseURL string) (*CountriesResponse, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = CountriesBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + CountriesEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("Error closing response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: bad status: %s", ErrNetwork, resp.Status)
	}

	var body CountriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding body: %v", ErrNetwork, err)
	}
	if body.Error {
		return nil, fmt.Errorf("%w: %s", ErrAPI, body.Msg)
	}
	return &body, nil
}
