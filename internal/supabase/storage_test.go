package supabase

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "github.com/supabase-community/storage-go"
)

type fakeUploader struct {
	bucket      string
	path        string
	data        []byte
	contentType string
	removed     []string
}

func (f *fakeUploader) UploadFile(bucketID, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error) {
	f.bucket = bucketID
	f.path = relativePath
	f.data, _ = io.ReadAll(data)
	if len(fileOptions) > 0 && fileOptions[0].ContentType != nil {
		f.contentType = *fileOptions[0].ContentType
	}
	return storage.FileUploadResponse{}, nil
}

func (f *fakeUploader) RemoveFile(bucketID string, paths []string) ([]storage.FileUploadResponse, error) {
	f.removed = append(f.removed, paths...)
	return nil, nil
}

func TestUploadDataURL(t *testing.T) {
	fake := &fakeUploader{}
	client := NewStorageClientWith(fake, "https://proj.supabase.co/", "product-images")

	url, err := client.UploadDataURL(5, "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, "product-images", fake.bucket)
	assert.True(t, strings.HasPrefix(fake.path, "products/5/"))
	assert.True(t, strings.HasSuffix(fake.path, ".png"))
	assert.Equal(t, []byte("hello"), fake.data)
	assert.Equal(t, "image/png", fake.contentType)
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/product-images/"+fake.path, url)
}

func TestUploadDataURL_Rejects(t *testing.T) {
	client := NewStorageClientWith(&fakeUploader{}, "https://proj.supabase.co", "b")

	_, err := client.UploadDataURL(1, "https://cdn.example/img.png")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, err = client.UploadDataURL(1, "data:image/png,plain")
	assert.ErrorIs(t, err, ErrNotDataURL)

	_, err = client.UploadDataURL(1, "data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestRemoveImage(t *testing.T) {
	fake := &fakeUploader{}
	client := NewStorageClientWith(fake, "https://proj.supabase.co", "b")

	require.NoError(t, client.RemoveImage("https://proj.supabase.co/storage/v1/object/public/b/products/1/a.png"))
	require.NoError(t, client.RemoveImage("https://cdn.example/img.png"))
	require.NoError(t, client.RemoveImage("/img/cap.jpg"))
	require.NoError(t, client.RemoveImage(""))

	assert.Equal(t, []string{"products/1/a.png"}, fake.removed)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/jpeg;base64,AAAA"))
	assert.False(t, IsDataURL("/img/cap.jpg"))
}
