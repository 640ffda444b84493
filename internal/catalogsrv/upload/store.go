// Package upload stores admin-submitted image files and maps them to
// the public URL paths the site serves them under.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/common/apperrors"
)

// FormFieldName is the multipart field the file is read from.
const FormFieldName = "image"

// Store writes uploaded files into a directory and reports the public
// path each stored file is reachable at.
type Store struct {
	Dir          string
	PublicPrefix string
	MaxSize      int64
}

// NewStore returns a Store configured from the service configuration.
func NewStore() *Store {
	cfg := config.Config()
	return &Store{
		Dir:          cfg.Upload.Dir,
		PublicPrefix: cfg.Upload.PublicPrefix,
		MaxSize:      cfg.Upload.MaxUploadSize,
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename strips any path components and characters outside
// [a-zA-Z0-9._-] from a client-supplied filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}

// Save writes src into the store under a timestamp-prefixed variant of
// name and returns the public path of the stored file. The timestamp
// prefix keeps repeated uploads of the same filename from colliding.
func (s *Store) Save(ctx context.Context, name string, src io.Reader) (string, apperrors.Error) {
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixNano(), SanitizeFilename(name))

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("dir", s.Dir).Msg("unable to create upload directory")
		return "", ErrSaveFailed.Err(err)
	}

	dst, err := os.Create(filepath.Join(s.Dir, storedName))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("file", storedName).Msg("unable to create upload file")
		return "", ErrSaveFailed.Err(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		log.Ctx(ctx).Error().Err(err).Str("file", storedName).Msg("unable to write upload file")
		return "", ErrSaveFailed.Err(err)
	}

	log.Ctx(ctx).Info().Str("file", storedName).Msg("file uploaded")
	return path.Join(s.PublicPrefix, storedName), nil
}

// FromRequest reads the uploaded file out of a multipart form request
// and stores it, returning the public path.
func (s *Store) FromRequest(r *http.Request) (string, apperrors.Error) {
	r.Body = http.MaxBytesReader(nil, r.Body, s.MaxSize)
	if err := r.ParseMultipartForm(s.MaxSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", ErrFileTooLarge
		}
		return "", ErrNoFile.Err(err)
	}

	file, header, err := r.FormFile(FormFieldName)
	if err != nil {
		return "", ErrNoFile
	}
	defer file.Close()

	if s.MaxSize > 0 && header.Size > s.MaxSize {
		return "", ErrFileTooLarge
	}

	return s.Save(r.Context(), header.Filename, file)
}
