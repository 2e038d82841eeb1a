// Package remote extracts PDF text through a hosted conversion API.
// Extraction is a two-step exchange: upload the file as base64, then
// request a text conversion of the uploaded URL.
package remote

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract converts PDF bytes to plain text via the remote service.
func (c *Client) Extract(ctx context.Context, content []byte, fileName string) (domain.Extraction, error) {
	if c.apiKey == "" {
		return domain.Extraction{}, fmt.Errorf("extraction API key not configured")
	}

	uploadReq := map[string]any{
		"file": base64.StdEncoding.EncodeToString(content),
		"name": fileName,
	}
	var uploadResp struct {
		URL string `json:"url"`
	}
	if err := c.postJSON(ctx, "/file/upload/base64", uploadReq, &uploadResp, "upload"); err != nil {
		return domain.Extraction{}, err
	}
	if uploadResp.URL == "" {
		return domain.Extraction{}, fmt.Errorf("upload returned no file url")
	}

	convertReq := map[string]any{
		"url":    uploadResp.URL,
		"inline": true,
		"async":  false,
	}
	var convertResp struct {
		Body string `json:"body"`
	}
	if err := c.postJSON(ctx, "/pdf/convert/to/text", convertReq, &convertResp, "convert"); err != nil {
		return domain.Extraction{}, err
	}
	if convertResp.Body == "" {
		return domain.Extraction{}, fmt.Errorf("conversion returned no text")
	}

	return domain.Extraction{
		Text:   convertResp.Body,
		Method: domain.MethodRemoteExtraction,
	}, nil
}
