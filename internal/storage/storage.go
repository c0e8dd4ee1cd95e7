// Package storage keeps evidence and document files outside the database.
// Repositories only store the reference returned by Put.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

// Object key prefixes
const (
	PrefixEvidence  = "evidences"
	PrefixDocuments = "documents"
)

// ErrEmptyUpload is returned when a file has no content
var ErrEmptyUpload = errors.New("upload is empty")

// BlobStore persists uploaded files and returns a reference to them
type BlobStore interface {
	Put(ctx context.Context, key string, upload domain.Upload) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey builds a unique object key under prefix/owner, keeping the
// original file extension
func NewKey(prefix, ownerID, fileName string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(fileName, "\\", "/"))))
	return fmt.Sprintf("%s/%s/%s%s", prefix, ownerID, uuid.NewString(), ext)
}

// Validate rejects uploads that are empty or larger than maxBytes.
// A non positive maxBytes disables the size check.
func Validate(upload domain.Upload, maxBytes int64) error {
	if len(upload.Body) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrEmptyUpload.Error())
	}
	if maxBytes > 0 && int64(len(upload.Body)) > maxBytes {
		return domain.Validationf("file exceeds %d bytes", maxBytes)
	}
	return nil
}
