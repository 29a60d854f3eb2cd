package store

import (
	"time"

	"go.uber.org/zap"
)

// DefaultKey is the storage key the Document is saved under.
const DefaultKey = "life_terminal_station"

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides the wall clock used for IDs and CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStrictLoad makes Open fail with CORRUPT_STATE when the saved Document
// is unreadable, instead of quarantining it and starting fresh.
func WithStrictLoad() Option {
	return func(s *Store) {
		s.strict = true
	}
}
