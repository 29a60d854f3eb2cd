package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/roach88/terminus/internal/blob"
	"github.com/roach88/terminus/internal/codec"
	"github.com/roach88/terminus/internal/record"
)

// quarantineSuffix is appended to the key when an unreadable blob is set aside.
const quarantineSuffix = ".corrupt"

// Store owns the Document and mediates every read and write of it.
//
// Store is designed for one logical writer. The mutex only makes it safe for
// a read-only observer (such as a countdown ticker) to read concurrently.
type Store struct {
	mu      sync.RWMutex
	backend blob.Backend
	codec   *codec.Codec
	key     string
	now     func() time.Time
	logger  *zap.Logger
	strict  bool

	doc record.Document
	ids idSequence
}

// Open loads the Document saved under the store key, or starts a fresh one.
//
// The backend is owned by the caller; Open never closes it.
func Open(ctx context.Context, backend blob.Backend, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, errors.New("open store: nil backend")
	}

	c, err := codec.New()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Store{
		backend: backend,
		codec:   c,
		key:     DefaultKey,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Key returns the storage key the Document is saved under.
func (s *Store) Key() string {
	return s.key
}

func (s *Store) load(ctx context.Context) error {
	data, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return persistenceFailure("load", err)
	}
	if !ok || len(data) == 0 {
		s.logger.Debug("no saved document, starting fresh", zap.String("key", s.key))
		s.doc = record.NewDocument()
		return nil
	}

	doc, err := s.codec.Decode(data)
	if err != nil {
		if s.strict {
			return &Error{Code: CodeCorruptState, Op: "load", Err: err}
		}
		if err := s.quarantine(ctx, data, err); err != nil {
			return err
		}
		doc = record.NewDocument()
	}

	s.doc = doc
	s.ids.observe(doc.MaxID())
	s.logger.Info("document loaded",
		zap.String("key", s.key),
		zap.Int("wills", len(doc.Wills)),
		zap.Int("belongings", len(doc.Belongings)),
		zap.Int("letters", len(doc.Letters)),
	)
	return nil
}

// quarantine copies an unreadable blob aside so that the next save cannot
// destroy it.
func (s *Store) quarantine(ctx context.Context, data []byte, cause error) error {
	aside := s.key + quarantineSuffix
	s.logger.Warn("saved document is unreadable, starting fresh",
		zap.String("key", s.key),
		zap.String("quarantine_key", aside),
		zap.Error(cause),
	)
	if err := s.backend.Put(ctx, aside, data); err != nil {
		s.logger.Error("failed to quarantine unreadable document", zap.String("key", aside), zap.Error(err))
		return persistenceFailure("quarantine", err)
	}
	return nil
}

// commit applies a mutation to a copy of the Document, persists the copy
// and only then makes it current.
func (s *Store) commit(ctx context.Context, op string, apply func(doc *record.Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	apply(&next)

	data, err := s.codec.Encode(next)
	if err != nil {
		return persistenceFailure(op, err)
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		s.logger.Error("save failed, change rolled back", zap.String("op", op), zap.Error(err))
		return persistenceFailure(op, err)
	}

	s.doc = next
	s.logger.Debug("document saved", zap.String("op", op), zap.Int("bytes", len(data)))
	return nil
}

// stamp assigns identity to a record being created. Caller holds s.mu.
func (s *Store) stamp() (int64, string) {
	now := s.now()
	return s.ids.next(now), record.Timestamp(now)
}

// Document returns a deep copy of the whole Document.
func (s *Store) Document() record.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}
