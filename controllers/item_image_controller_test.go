package controllers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFiles(t *testing.T) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(os.Getenv("UPLOAD_DIR"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestUploadSingleImage(t *testing.T) {
	c := newTestClient(t)

	w := c.doMultipart("/items/upload-image", "image", []testFile{
		{Name: "photo.png", Content: []byte("png bytes")},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "photo.png", body["fileName"])

	imageURL := body["imageUrl"].(string)
	assert.True(t, strings.HasPrefix(imageURL, "http://localhost:8080/uploads/items/"), imageURL)
	// Stored names are random, so references never collide or carry commas.
	assert.NotContains(t, imageURL, ",")
	assert.NotContains(t, imageURL, "photo")

	assert.Len(t, uploadedFiles(t), 1)
}

func TestUploadRejectsBadExtension(t *testing.T) {
	c := newTestClient(t)

	w := c.doMultipart("/items/upload-image", "image", []testFile{
		{Name: "notes.txt", Content: []byte("not an image")},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, uploadedFiles(t))
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	c := newTestClient(t)

	w := c.doMultipart("/items/upload-image", "image", []testFile{
		{Name: "huge.jpg", Content: bytes.Repeat([]byte("x"), 5*1024*1024+1)},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, uploadedFiles(t))
}

func TestUploadMultipleImages(t *testing.T) {
	c := newTestClient(t)

	files := []testFile{
		{Name: "one.jpg", Content: []byte("1")},
		{Name: "two.webp", Content: []byte("2")},
		{Name: "three.gif", Content: []byte("3")},
	}
	w := c.doMultipart("/items/upload-multiple-images", "images", files)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["count"])
	assert.Len(t, body["imageUrls"].([]interface{}), 3)
	assert.Len(t, uploadedFiles(t), 3)
}

func TestUploadBatchOfElevenRejected(t *testing.T) {
	c := newTestClient(t)

	var files []testFile
	for i := 0; i < 11; i++ {
		files = append(files, testFile{Name: fmt.Sprintf("f%d.jpg", i), Content: []byte("x")})
	}

	w := c.doMultipart("/items/upload-multiple-images", "images", files)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	// The oversized batch is rejected before anything is written.
	assert.Empty(t, uploadedFiles(t))
}

func TestUploadBatchAbortsOnInvalidFile(t *testing.T) {
	c := newTestClient(t)

	files := []testFile{
		{Name: "ok.jpg", Content: []byte("1")},
		{Name: "bad.exe", Content: []byte("2")},
		{Name: "never-reached.png", Content: []byte("3")},
	}
	w := c.doMultipart("/items/upload-multiple-images", "images", files)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Files written before the bad one stay; the remainder was aborted.
	assert.Len(t, uploadedFiles(t), 1)
}

func TestUploadRequiresFiles(t *testing.T) {
	c := newTestClient(t)

	w := c.doMultipart("/items/upload-multiple-images", "images", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
