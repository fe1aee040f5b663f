// Package imagehost provides the binary image upload adapter used to
// replace vault image embeds with hosted URLs during publish.
package imagehost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.ImageHost = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.imgur.com"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the image host client.
type Config struct {
	// BaseURL is the API base URL (default: https://api.imgur.com).
	BaseURL string

	// ClientID authorises anonymous uploads.
	ClientID string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Client uploads images to an Imgur-compatible host.
type Client struct {
	client   *http.Client
	baseURL  string
	clientID string
}

// UploadError is an image-host failure, isolated per image: the
// publisher degrades the failed embed to a placeholder and continues.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("imagehost: upload %s: %v", e.Filename, e.Err)
}

// Unwrap ties the error into the domain taxonomy.
func (e *UploadError) Unwrap() error {
	return domain.ErrUpload
}

// uploadRequest is the API request format.
type uploadRequest struct {
	Image string `json:"image"`
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
}

// uploadResponse is the API response format.
type uploadResponse struct {
	Data struct {
		Link string `json:"link"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// NewClient creates a new image host client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
	}
}

// Upload sends one image and returns its hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if c.clientID == "" {
		return "", &UploadError{Filename: filename, Err: domain.ErrAuthRequired}
	}

	reqBody := uploadRequest{
		Image: base64.StdEncoding.EncodeToString(data),
		Type:  "base64",
		Name:  filename,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/3/image",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if readErr != nil {
			return "", &UploadError{Filename: filename, Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body))}
	}

	var uploadResp uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("decode response: %w", err)}
	}

	if !uploadResp.Success || uploadResp.Data.Link == "" {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("upload rejected (status %d)", uploadResp.Status)}
	}

	return uploadResp.Data.Link, nil
}
