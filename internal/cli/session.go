package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/terminus/internal/blob"
	"github.com/roach88/terminus/internal/store"
)

// session is one command's view of the store.
type session struct {
	ctx       context.Context
	store     *store.Store
	backend   blob.Backend
	formatter *OutputFormatter
	logger    *zap.Logger
}

// openSession opens the backend selected by the global flags and loads the
// Document from it.
func openSession(cmd *cobra.Command, opts *RootOptions) (*session, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var backend blob.Backend
	if opts.Memory {
		formatter.VerboseLog("Using in-memory store; nothing will be saved")
		backend = blob.NewMemory()
	} else {
		formatter.VerboseLog("Opening %s", opts.DB)
		if err := os.MkdirAll(filepath.Dir(opts.DB), 0o700); err != nil {
			return nil, WrapExitError(ExitFailure, string(store.CodePersistenceFailure), "failed to create database directory", err)
		}
		db, err := blob.OpenSQLite(opts.DB)
		if err != nil {
			return nil, WrapExitError(ExitFailure, string(store.CodePersistenceFailure), "failed to open database", err)
		}
		backend = db
	}

	storeOpts := []store.Option{store.WithKey(opts.Key), store.WithLogger(logger)}
	if opts.Now != nil {
		storeOpts = append(storeOpts, store.WithClock(opts.Now))
	}
	// Use command's context if available (for testing), otherwise create one
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(ctx, backend, storeOpts...)
	if err != nil {
		_ = backend.Close()
		return nil, storeError("failed to load saved data", err)
	}

	return &session{ctx: ctx, store: st, backend: backend, formatter: formatter, logger: logger}, nil
}

// Close releases the backend.
func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing database", zap.Error(err))
	}
}

// withSession opens a session, runs fn and closes the session.
func withSession(cmd *cobra.Command, opts *RootOptions, fn func(s *session) error) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// parseID parses a record ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, NewExitError(ExitCommandError, ErrCodeInvalidInput, fmt.Sprintf("invalid id %q: must be a positive integer", arg))
	}
	return id, nil
}

// choices renders enum values for flag help, e.g. "burial|cremation".
func choices[T ~string](all []T) string {
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = string(v)
	}
	return strings.Join(names, "|")
}
