// Package api is the HTTP client for the notekeeper backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

const requestTimeout = 10 * time.Second

// Client talks to the backend JSON API. It keeps the access token obtained
// at login and attaches it to subsequent requests.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e apiError
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
			return fmt.Errorf("server: %s", e.Message)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, username string, password []byte) error {
	body := map[string]string{"username": username, "password": string(password)}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil)
}

// Login authenticates and stores the access token for later calls.
func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	body := map[string]string{"username": username, "password": string(password)}
	var tokens tokenPair
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &tokens); err != nil {
		return err
	}
	c.accessToken = tokens.AccessToken
	return nil
}

func (c *Client) ListNotes(ctx context.Context) ([]*models.Note, error) {
	var notes []*models.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) SearchNotes(ctx context.Context, query string) ([]*models.Note, error) {
	var notes []*models.Note
	path := "/api/notes/search?q=" + url.QueryEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	var folders []*models.Folder
	if err := c.do(ctx, http.MethodGet, "/api/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// ExportNotes asks the server to publish a snapshot and returns the
// presigned download URL.
func (c *Client) ExportNotes(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/export", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
