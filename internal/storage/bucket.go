package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type bucketClient struct {
	baseURL    string
	bucket     string
	serviceKey string
	client     *http.Client
}

// NewBucketClient creates a Store backed by the hosted object-storage REST API.
// Objects are written to POST {baseURL}/object/{bucket}/{path} and served from
// {baseURL}/object/public/{bucket}/{path}.
func NewBucketClient(baseURL, bucket, serviceKey string) Store {
	return &bucketClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		client:     http.DefaultClient,
	}
}

func (c *bucketClient) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, r)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			return "", fmt.Errorf("storage upload failed: %s", body.Message)
		}
		return "", fmt.Errorf("storage upload failed: status %d", resp.StatusCode)
	}

	return c.PublicURL(objectPath), nil
}

// PublicURL derives the public URL for a stored object path. The derivation is
// deterministic; the provider serves public bucket objects without auth.
func (c *bucketClient) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}
