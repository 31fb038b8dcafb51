// Package upload reads files from multipart requests and local disk into model.File,
// sniffing the content type from the bytes.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"arkive-client/internal/model"
)

// MaxFileSize bounds a single upload.
const MaxFileSize = 50 << 20

var ErrFileTooLarge = errors.New("upload: file too large")

// FromMultipart reads fh into a model.File.
func FromMultipart(fh *multipart.FileHeader) (model.File, error) {
	if fh.Size > MaxFileSize {
		return model.File{}, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return model.File{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return read(filepath.Base(fh.Filename), f)
}

// FromPath reads a local file into a model.File.
func FromPath(path string) (model.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.File{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return read(filepath.Base(path), f)
}

func read(name string, r io.Reader) (model.File, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return model.File{}, fmt.Errorf("read %s: %w", name, err)
	}
	if len(content) > MaxFileSize {
		return model.File{}, ErrFileTooLarge
	}
	return model.File{
		Name:        name,
		ContentType: DetectContentType(content),
		Content:     content,
	}, nil
}

// DetectContentType returns the MIME type sniffed from content, e.g. "application/pdf".
func DetectContentType(content []byte) string {
	return mimetype.Detect(content).String()
}
