package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Book is the wire form of a catalog record.
type Book struct {
	ID     int64  `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
}

// Client talks to the catalog service REST surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A zero timeout disables it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// List fetches every record.
func (c *Client) List(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Create posts a new record and returns the stored copy with its server id.
func (c *Client) Create(ctx context.Context, book Book) (*Book, error) {
	var created Book
	if err := c.do(ctx, http.MethodPost, "/books", book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a record. Returns nil without error when the id is unknown to the server.
func (c *Client) Update(ctx context.Context, id int64, book Book) (*Book, error) {
	var updated *Book
	if err := c.do(ctx, http.MethodPut, bookPath(id), book, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a record. The server confirms unknown ids as well.
func (c *Client) Delete(ctx context.Context, id int64) error {
	var resp struct {
		Message string `json:"message"`
	}
	return c.do(ctx, http.MethodDelete, bookPath(id), nil, &resp)
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode %s %s response: %v", ErrUnavailable, method, path, err)
	}
	return nil
}
