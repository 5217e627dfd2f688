package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// Default is the process-wide storage client, nil when SUPABASE_URL is unset.
var Default *Client

type Client struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewClient(supabaseURL, serviceKey, bucket string) *Client {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	return &Client{
		client:  storage.NewClient(baseURL+"/storage/v1", serviceKey, nil),
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Init wires the Default client; a blank URL leaves uploads disabled.
func Init(supabaseURL, serviceKey, bucket string) {
	if supabaseURL == "" {
		return
	}
	Default = NewClient(supabaseURL, serviceKey, bucket)
}

// UploadArtistImage stores an image under artists/{artist_id}/ and returns
// the public URL.
func (c *Client) UploadArtistImage(artistID, filename, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	upsert := true

	path := fmt.Sprintf("artists/%s/%s-%s", artistID, uuid.NewString(), filename)
	_, err := c.client.UploadFile(c.bucket, path, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return c.PublicURL(path), nil
}

func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}

func (c *Client) Delete(path string) error {
	_, err := c.client.RemoveFile(c.bucket, []string{path})
	return err
}
