package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayfarer/errors"
)

// WikipediaService fetches destination background from the Wikipedia
// REST summary endpoint. It needs no API key.
type WikipediaService struct {
	client *http.Client
}

// NewWikipediaService builds a summary client.
func NewWikipediaService(timeout time.Duration) *WikipediaService {
	return &WikipediaService{client: &http.Client{Timeout: timeout}}
}

// Summary returns the lead extract for a topic, trying the French
// edition first and falling back to English.
func (s *WikipediaService) Summary(ctx context.Context, topic string) (string, error) {
	for _, lang := range []string{"fr", "en"} {
		extract, err := s.fetch(ctx, lang, topic)
		if err == nil && extract != "" {
			return extract, nil
		}
	}
	return "", errors.New("%s", fmt.Sprintf("no encyclopedia entry found for %q", topic))
}

func (s *WikipediaService) fetch(ctx context.Context, lang, topic string) (string, error) {
	endpoint := fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/page/summary/%s",
		lang, url.PathEscape(topic))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload struct {
		Extract string `json:"extract"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.Extract, nil
}
