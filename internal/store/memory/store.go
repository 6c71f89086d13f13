package memory

import (
	"context"
	"sync"

	"github.com/userbinhq/userbin/internal/model"
	"github.com/userbinhq/userbin/internal/store"
)

// Store is an in-memory implementation of the document store
type Store struct {
	mu  sync.RWMutex
	doc *model.UserDocument
}

// New creates a new in-memory store holding an empty document
func New() *Store {
	return &Store{}
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

// Fetch returns a deep copy of the current document. The copy keeps callers
// from mutating stored state without going through Store, preserving the
// fetch-mutate-store cycle the remote backend imposes.
func (s *Store) Fetch(ctx context.Context) (*model.UserDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return model.NewUserDocument(), nil
	}

	users := make([]model.User, len(s.doc.Users))
	copy(users, s.doc.Users)
	return &model.UserDocument{Users: users}, nil
}

// Store replaces the document with a copy of the given contents
func (s *Store) Store(ctx context.Context, doc *model.UserDocument) error {
	users := make([]model.User, len(doc.Users))
	copy(users, doc.Users)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &model.UserDocument{Users: users}
	return nil
}
