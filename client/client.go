/* client.go
 * Contains the HTTP client for the retrieval service. One fetch method per
 * endpoint; every response is a full materialization of the requested scope,
 * narrowed locally by the query pipeline afterwards.
 * Authors: Karan Kamath
 */

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// Client fetches contest and record data from the retrieval service
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchContests fetches the full contest directory snapshot
func (c *Client) FetchContests(ctx context.Context) ([]shared.Contest, error) {
	contests := []shared.Contest{}
	if err := c.getJSON(ctx, "/api/contests", &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// FetchContest fetches a single contest by id
func (c *Client) FetchContest(ctx context.Context, id string) (shared.Contest, error) {
	var contest shared.Contest
	if err := c.getJSON(ctx, "/api/contests/"+url.PathEscape(id), &contest); err != nil {
		return shared.Contest{}, err
	}
	return contest, nil
}

// FetchQuestionRecords fetches every plagiarism record for a question id. The
// service answers an unknown id with an empty array, so a clean question and
// an unknown one look the same here too.
func (c *Client) FetchQuestionRecords(ctx context.Context, questionID string) ([]shared.PlagiarismRecord, error) {
	records := []shared.PlagiarismRecord{}
	if err := c.getJSON(ctx, "/api/questions/"+url.PathEscape(questionID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// getJSON issues one GET request and decodes the body into out
// Preconditions: Receives a context, the request path and a pointer to decode into
// Postconditions: Returns nil on a 200 response, or an error for transport
// faults and non-200 statuses
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
