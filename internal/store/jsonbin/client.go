package jsonbin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/userbinhq/userbin/internal/model"
	"github.com/userbinhq/userbin/internal/store"
)

// Store is a DocumentStore backed by a remote JSONBin v3 bin.
//
// The bin holds the whole user document as one JSON object. Reads hit
// GET /b/{id}/latest (which wraps the document in a "record" field) and
// writes replace the bin with PUT /b/{id}.
type Store struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new JSONBin-backed store
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	if cfg.BinID == "" {
		return nil, errors.New("jsonbin: BinID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return &Store{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

// Ensure Store implements the interface
var _ store.DocumentStore = (*Store)(nil)

// readResponse is the JSONBin v3 read envelope. Older bins may return the
// document without the wrapper, so Record is unwrapped only when present.
type readResponse struct {
	Record *model.UserDocument `json:"record"`
}

// Fetch reads the latest bin contents. A 404 means the bin has not been
// provisioned yet and yields an empty document so that the first write can
// create it; any other non-200 status wraps model.ErrStoreUnavailable.
func (s *Store) Fetch(ctx context.Context) (*model.UserDocument, error) {
	url := fmt.Sprintf("%s/b/%s/latest", s.cfg.BaseURL, s.cfg.BinID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return model.NewUserDocument(), nil
	default:
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("jsonbin read failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrStoreUnavailable, resp.StatusCode)
	}

	var parsed readResponse
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %w", model.ErrStoreUnavailable, err)
	}

	doc := parsed.Record
	if doc == nil {
		// No "record" wrapper; the body is the document itself
		doc = &model.UserDocument{}
		if err := json.Unmarshal(body, doc); err != nil {
			return nil, fmt.Errorf("%w: malformed document: %w", model.ErrStoreUnavailable, err)
		}
	}
	if doc.Users == nil {
		doc.Users = []model.User{}
	}
	return doc, nil
}

// Store overwrites the bin with the given document. Non-2xx responses wrap
// model.ErrStoreWriteFailed.
func (s *Store) Store(ctx context.Context, doc *model.UserDocument) error {
	url := fmt.Sprintf("%s/b/%s", s.cfg.BaseURL, s.cfg.BinID)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWriteFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWriteFailed, err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrStoreWriteFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("jsonbin write failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("%w: unexpected status %d", model.ErrStoreWriteFailed, resp.StatusCode)
	}

	return nil
}

func (s *Store) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", s.cfg.MasterKey)
	if s.cfg.AccessKey != "" {
		req.Header.Set("X-Access-Key", s.cfg.AccessKey)
	}
}
