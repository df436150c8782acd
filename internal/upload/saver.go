package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fixed subdirectories, one per functional area. Anything else lands in
// general.
var Folders = []string{
	"skid_depot", "skid_laut", "skid_lumbung",
	"loading", "distribusi", "pembayaran", "general",
}

// Saver writes uploaded attachments under one base directory and hands
// back the web path they are served from.
type Saver struct {
	BaseDir   string
	URLPrefix string

	known map[string]struct{}
}

// New prepares the upload tree. Construct once at startup and pass to the
// handlers that take uploads.
func New(baseDir, urlPrefix string) (*Saver, error) {
	s := &Saver{
		BaseDir:   baseDir,
		URLPrefix: strings.TrimSuffix(urlPrefix, "/"),
		known:     make(map[string]struct{}, len(Folders)),
	}
	for _, folder := range Folders {
		if err := os.MkdirAll(filepath.Join(baseDir, folder), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", folder, err)
		}
		s.known[folder] = struct{}{}
	}
	return s, nil
}

// Save writes the file to disk and returns its web path
// (<prefix>/<folder>/<name>). Filenames are timestamped with a short
// random suffix so simultaneous uploads cannot collide.
func (s *Saver) Save(fh *multipart.FileHeader, folder string) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", fmt.Errorf("no file provided")
	}
	if _, ok := s.known[folder]; !ok {
		folder = "general"
	}

	name := fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		filepath.Ext(fh.Filename),
	)
	dst := filepath.Join(s.BaseDir, folder, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.URLPrefix, folder, name), nil
}

// Remove deletes a previously saved file given its web path. Best-effort:
// a missing file is not an error.
func (s *Saver) Remove(webPath string) error {
	rel := strings.TrimPrefix(webPath, s.URLPrefix+"/")
	if rel == webPath || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(rel)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
