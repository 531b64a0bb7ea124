// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// Form field names of the uploaded files.
const (
	fieldAvatar     = "avatar"
	fieldCoverImage = "coverImage"
)

// multipartMemory is the part of a multipart body kept in memory while
// parsing; larger files spill to the OS temp directory.
const multipartMemory = 8 << 20

// stagedForm is a parsed request form whose files were copied to the
// staging directory.
type stagedForm struct {
	values url.Values

	// files maps a form field to the local path of its staged file.
	files map[string]string
}

// value returns the form value for key.
func (f *stagedForm) value(key string) string {
	return f.values.Get(key)
}

// optional returns nil when key is absent from the form.
func (f *stagedForm) optional(key string) *string {
	if _, ok := f.values[key]; !ok {
		return nil
	}
	v := f.values.Get(key)
	return &v
}

// file returns the staged path for key, or an empty string.
func (f *stagedForm) file(key string) string {
	return f.files[key]
}

// cleanup removes the staged files that the services did not consume.
func (f *stagedForm) cleanup(ctx context.Context) {
	for _, path := range f.files {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.FromContext(ctx).Err(err).Str("func", "*stagedForm.cleanup").Str("path", path).Msg("could not remove staged file")
		}
	}
}

// stageForm parses a multipart or urlencoded body limited to the configured
// upload size and copies the files of fileFields to the staging directory.
// Missing files are not an error. The caller must call cleanup on the
// returned form.
func (h *Handler) stageForm(w http.ResponseWriter, r *http.Request, fileFields ...string) (*stagedForm, error) {
	form := &stagedForm{values: url.Values{}, files: map[string]string{}}

	if h.uploads.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxUploadSize)
	}

	if !isMultipart(r) {
		if err := r.ParseForm(); err != nil {
			return form, wrapBodyError(err)
		}
		form.values = r.PostForm
		return form, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return form, wrapBodyError(err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	form.values = url.Values(r.MultipartForm.Value)

	for _, field := range fileFields {
		headers := r.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}

		path, err := h.stageFile(headers[0])
		if err != nil {
			return form, fmt.Errorf("%w: %w", ErrStagingFailed, err)
		}
		form.files[field] = path
	}

	return form, nil
}

func (h *Handler) stageFile(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err = os.MkdirAll(h.uploads.TempDir, 0o700); err != nil {
		return "", err
	}

	dst, err := os.CreateTemp(h.uploads.TempDir, "upload-*"+safeExt(header.Filename))
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return dst.Name(), nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func wrapBodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformedRequest, err)
}

// safeExt keeps a short alphanumeric extension of the client file name so
// the media host can sniff the type; anything else is dropped.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
