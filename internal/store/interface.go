package store

import (
	"context"

	"github.com/userbinhq/userbin/internal/model"
)

// DocumentStore defines the interface for persisting the user document.
//
// The document is read and written wholesale: Store replaces the entire
// previous document with no merge or conditional-write semantics. Two
// overlapping fetch-mutate-store cycles can therefore lose the earlier write;
// callers that need stronger guarantees need a different backend.
type DocumentStore interface {
	// Fetch reads the current user document. A backend that has never been
	// written returns an empty document, not an error; failures to reach the
	// backend wrap model.ErrStoreUnavailable.
	Fetch(ctx context.Context) (*model.UserDocument, error)

	// Store overwrites the document with the given contents. Failures wrap
	// model.ErrStoreWriteFailed.
	Store(ctx context.Context, doc *model.UserDocument) error
}
