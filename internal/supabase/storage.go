package supabase

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
	"storefront-backend/internal/models"
)

var ErrNotDataURL = errors.New("not a base64 data URL")

// Uploader is the storage-go call surface used by StorageClient.
type Uploader interface {
	UploadFile(bucketID, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
	RemoveFile(bucketID string, paths []string) ([]storage.FileUploadResponse, error)
}

type StorageClient struct {
	client  Uploader
	bucket  string
	baseURL string
}

func NewStorageClient(projectURL, serviceKey, bucket string) (*StorageClient, error) {
	client, err := NewClient(projectURL, serviceKey)
	if err != nil {
		return nil, err
	}
	return NewStorageClientWith(client.Storage, projectURL, bucket), nil
}

func NewStorageClientWith(client Uploader, projectURL, bucket string) *StorageClient {
	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(projectURL, "/"),
	}
}

// IsDataURL reports whether s is an inline base64 payload rather than a link.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// UploadDataURL stores an inline product image under products/{id}/ and
// returns its public URL.
func (s *StorageClient) UploadDataURL(productID models.ID, dataURL string) (string, error) {
	contentType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	storagePath := fmt.Sprintf("products/%d/%s%s", productID, uuid.NewString(), extension(contentType))
	return s.UploadFile(storagePath, contentType, data)
}

func (s *StorageClient) UploadFile(storagePath, contentType string, data []byte) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// RemoveImage deletes an image previously uploaded to the bucket. Links that
// point anywhere else are left alone.
func (s *StorageClient) RemoveImage(publicURL string) error {
	storagePath, ok := strings.CutPrefix(publicURL, s.GetPublicURL(""))
	if !ok || storagePath == "" {
		return nil
	}
	return s.DeleteFile(storagePath)
}

func (s *StorageClient) DeleteFile(storagePath string) error {
	if _, err := s.client.RemoveFile(s.bucket, []string{storagePath}); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", storagePath, err)
	}
	return nil
}

func decodeDataURL(dataURL string) (string, []byte, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !IsDataURL(dataURL) || !ok || !strings.HasSuffix(header, ";base64") {
		return "", nil, ErrNotDataURL
	}

	contentType := strings.TrimSuffix(header, ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return contentType, data, nil
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
