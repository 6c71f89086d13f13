package auth

import (
	"context"
	"log/slog"

	"github.com/userbinhq/userbin/internal/dependencies/clock"
	"github.com/userbinhq/userbin/internal/model"
	"github.com/userbinhq/userbin/internal/services/token"
	"github.com/userbinhq/userbin/internal/store"
)

// Service handles registration, login and user listing against the document
// store.
//
// Every operation runs a full fetch of the user document; mutating operations
// write the whole document back. Nothing coordinates concurrent
// fetch-mutate-store cycles, so two simultaneous registrations can race and
// the later write wins. That matches the store's overwrite semantics; fixing
// it needs a conditional write the store does not offer.
type Service struct {
	store  store.DocumentStore
	issuer *token.Issuer
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new auth service
func New(store store.DocumentStore, issuer *token.Issuer, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		issuer: issuer,
		clock:  clk,
		logger: logger,
	}
}

// Register creates a new user with the given credentials. Returns
// model.ErrUsernameExists if the username is already taken (exact,
// case-sensitive match).
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	doc, err := s.store.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if doc.HasUser(username) {
		return nil, model.ErrUsernameExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC(),
	}
	doc.Append(user)

	if err := s.store.Store(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("username", username))
	return &user, nil
}

// Login verifies the given credentials and issues a bearer token. Unknown
// username and wrong password both return model.ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	doc, err := s.store.Fetch(ctx)
	if err != nil {
		return "", nil, err
	}

	user, err := doc.FindUser(username)
	if err != nil {
		return "", nil, model.ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, model.ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(username)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", slog.String("username", username))
	return tok, user, nil
}

// ListUsers returns all users in insertion order
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	doc, err := s.store.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}
