package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Storage bucket names.
const (
	BucketImages = "site-images"
	BucketVideos = "aftermovies"
)

// UploadObject stores an object in a storage bucket and returns its
// public URL. The path should be unique; existing objects are replaced.
func (c *Client) UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.do(ctx, request{
		method: "POST",
		path:   "/storage/v1/object/" + bucket + "/" + escapePath(path),
		raw:    data,
		headers: map[string]string{
			"Content-Type":  contentType,
			"x-upsert":      "true",
			"Cache-Control": "3600",
		},
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s/%s: %w", bucket, path, err)
	}

	return c.PublicObjectURL(bucket, path), nil
}

// DeleteObject removes an object from a storage bucket.
func (c *Client) DeleteObject(ctx context.Context, bucket, path string) error {
	_, err := c.do(ctx, request{
		method: "DELETE",
		path:   "/storage/v1/object/" + bucket + "/" + escapePath(path),
	})
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", bucket, path, err)
	}
	return nil
}

// PublicObjectURL returns the public download URL for a stored object.
func (c *Client) PublicObjectURL(bucket, path string) string {
	return c.baseURL + "/storage/v1/object/public/" + bucket + "/" + escapePath(path)
}

// escapePath escapes each path segment while preserving separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
