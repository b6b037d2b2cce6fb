// Package content implements the remote workout content source: an HTTP
// client for the gym's JSON API with its PHP-style nested query parameters.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/book-expert/logger"
	"github.com/book-expert/wod-skill-service/internal/wod"
)

// requestDateSuffix pads a calendar day out to the midnight timestamp the
// API filters on.
const requestDateSuffix = "T00:00:00.000Z"

// ErrUnexpectedStatus indicates a content API response outside the handled
// status codes.
var ErrUnexpectedStatus = errors.New("unexpected content API status")

// Client fetches workout records over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a content client for the given API URL.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport:     nil,
			CheckRedirect: nil,
			Jar:           nil,
			Timeout:       timeout,
		},
		log: log,
	}
}

// apiResponse is the JSON-API document the content endpoint returns.
type apiResponse struct {
	Data []struct {
		Attributes map[string]any `json:"attributes"`
	} `json:"data"`
}

// WODForDate fetches the workout record for one calendar day. It returns
// (nil, nil) when no workout exists for that day: the API answers 401 for
// unreleased days, and records without any content count as absent, matching
// the upstream service's behavior.
func (c *Client) WODForDate(ctx context.Context, day time.Time) (*wod.Record, error) {
	document, err := c.fetch(ctx, day)
	if err != nil {
		return nil, err
	}

	if document == nil {
		return nil, nil
	}

	wanted := day.Format("2006-01-02")

	for _, item := range document.Data {
		record := wod.NewRecord(item.Attributes)
		if record.Date.IsZero() {
			c.log.Warn("content record without parseable date attribute, skipping")

			continue
		}

		if record.Date.Format("2006-01-02") != wanted {
			continue
		}

		if record.Empty() {
			c.log.Info("content record for %s has no content", wanted)

			return nil, nil
		}

		return record, nil
	}

	return nil, nil
}

func (c *Client) fetch(ctx context.Context, day time.Time) (*apiResponse, error) {
	query := EncodeNestedQuery(map[string]any{
		"filter": map[string]any{
			"simple": map[string]any{
				"date":    day.Format("2006-01-02") + requestDateSuffix,
				"enabled": true,
			},
		},
	})

	requestURL := c.baseURL + "?" + query

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build content request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("content request failed: %w", err)
	}

	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			c.log.Warn("failed to close content response body: %v", closeErr)
		}
	}()

	// The API answers 401 for days whose workout is not released.
	if response.StatusCode == http.StatusUnauthorized {
		c.log.Info("content API returned 401 for %s", day.Format("2006-01-02"))

		return nil, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}

	var document apiResponse

	err = json.NewDecoder(response.Body).Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content response: %w", err)
	}

	return &document, nil
}
