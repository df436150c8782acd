package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSaver(t *testing.T) *Saver {
	t.Helper()
	s, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return s
}

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1 << 20))

	return req.MultipartForm.File["file"][0]
}

func TestNewCreatesFolders(t *testing.T) {
	dir := t.TempDir()
	_, err := New(dir, "/uploads/")
	require.NoError(t, err)

	for _, folder := range Folders {
		info, err := os.Stat(filepath.Join(dir, folder))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSave(t *testing.T) {
	s := newTestSaver(t)

	path, err := s.Save(fileHeader(t, "foto.jpg", "isi foto"), "pembayaran")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/pembayaran/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	onDisk := filepath.Join(s.BaseDir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "isi foto", string(data))
}

func TestSaveUnknownFolderFallsBackToGeneral(t *testing.T) {
	s := newTestSaver(t)

	path, err := s.Save(fileHeader(t, "video.mp4", "x"), "tidak-ada")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/general/"))
}

func TestSaveNilHeader(t *testing.T) {
	s := newTestSaver(t)

	_, err := s.Save(nil, "pembayaran")
	assert.Error(t, err)
}

func TestSaveUniqueNames(t *testing.T) {
	s := newTestSaver(t)

	p1, err := s.Save(fileHeader(t, "a.png", "1"), "loading")
	require.NoError(t, err)
	p2, err := s.Save(fileHeader(t, "a.png", "2"), "loading")
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestRemove(t *testing.T) {
	s := newTestSaver(t)

	path, err := s.Save(fileHeader(t, "bukti.png", "x"), "pembayaran")
	require.NoError(t, err)
	onDisk := filepath.Join(s.BaseDir, strings.TrimPrefix(path, "/uploads/"))

	require.NoError(t, s.Remove(path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))

	// Already gone, foreign prefix, traversal: all quiet no-ops.
	assert.NoError(t, s.Remove(path))
	assert.NoError(t, s.Remove("/elsewhere/bukti.png"))
	assert.NoError(t, s.Remove("/uploads/../etc/passwd"))
}
