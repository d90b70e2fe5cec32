package repository

import (
	"context"
	"errors"
)

// Storage keys, one per collection. Values are the JSON encoding of the
// whole collection; the store never reads or writes anything else.
const (
	TasksKey   = "learntrack:tasks"
	ModulesKey = "learntrack:modules"
	LogsKey    = "learntrack:logs"
)

// ErrNotFound is returned by Get when no value exists for the key. Callers
// treat it the same as a malformed value: fall back to defaults.
var ErrNotFound = errors.New("blobstore: key not found")

// BlobStore is the durable key-value medium behind the learning store. It
// only has to round-trip opaque strings; the encoding belongs to the caller.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
