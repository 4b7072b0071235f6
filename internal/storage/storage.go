// Package storage provides the document store abstraction the content
// collections persist through. Each store holds exactly one JSON document
// which is read and rewritten wholesale; there is no partial update.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no document has been written yet.
// Callers use it to trigger first-use seeding; any other error means the
// document exists but could not be read.
var ErrNotExist = errors.New("document does not exist")

// Store persists a single JSON document.
//
// Implementations must make Save all-or-nothing: a failed Save leaves the
// previously persisted document intact.
type Store interface {
	// Load reads the document and unmarshals it into dest.
	Load(ctx context.Context, dest any) error
	// Save marshals src and replaces the document with it.
	Save(ctx context.Context, src any) error
}
