package store

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// CodeCorruptState indicates saved data exists but cannot be read as a Document.
	CodeCorruptState ErrorCode = "CORRUPT_STATE"

	// CodePersistenceFailure indicates a read from or write to durable storage failed.
	CodePersistenceFailure ErrorCode = "PERSISTENCE_FAILURE"

	// CodeInvalidRecord indicates the caller supplied a record that fails validation.
	CodeInvalidRecord ErrorCode = "INVALID_RECORD"
)

// Error is returned by every failing store operation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the store operation, e.g. "add will".
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsCorruptState returns true if err is a CORRUPT_STATE store error.
func IsCorruptState(err error) bool {
	return hasCode(err, CodeCorruptState)
}

// IsPersistenceFailure returns true if err is a PERSISTENCE_FAILURE store error.
// The action that produced it may not survive a restart.
func IsPersistenceFailure(err error) bool {
	return hasCode(err, CodePersistenceFailure)
}

// IsInvalidRecord returns true if err is an INVALID_RECORD store error.
func IsInvalidRecord(err error) bool {
	return hasCode(err, CodeInvalidRecord)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

func invalidRecord(op string, err error) *Error {
	return &Error{Code: CodeInvalidRecord, Op: op, Err: err}
}

func persistenceFailure(op string, err error) *Error {
	return &Error{Code: CodePersistenceFailure, Op: op, Err: err}
}
