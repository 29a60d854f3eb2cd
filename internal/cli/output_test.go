package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/terminus/internal/store"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"title": "House & garden"}
	err := formatter.Success(data, func(w io.Writer) { t.Fatal("text renderer must not run in json mode") })
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"title": "House & garden"}, resp.Data)
	assert.Contains(t, buf.String(), "House & garden")
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("PERSISTENCE_FAILURE", "save failed", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PERSISTENCE_FAILURE", resp.Error.Code)
	assert.Equal(t, "save failed", resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Success("Will saved", nil))
	assert.Equal(t, "Will saved\n", buf.String())

	buf.Reset()
	require.NoError(t, formatter.Success(42, func(w io.Writer) { fmt.Fprint(w, "rendered") }))
	assert.Equal(t, "rendered", buf.String())
}

func TestOutputFormatter_TextErrorGoesToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "text",
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   true,
	}

	err := formatter.Error("INVALID_RECORD", "bad category", map[string]string{"category": "furniture"})
	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error [INVALID_RECORD]: bad category")
	assert.Contains(t, errOut.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("Opening %s", "terminus.db")

			if tt.wantLog {
				assert.Contains(t, buf.String(), "Opening terminus.db")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("unknown flag: --nope")))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, ErrCodeGeneric, "boom")))

	wrapped := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, ErrCodeInvalidInput, "bad id"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestStoreError_Mapping(t *testing.T) {
	tests := []struct {
		code       store.ErrorCode
		wantExit   int
		wantReason string
	}{
		{store.CodeInvalidRecord, ExitCommandError, "INVALID_RECORD"},
		{store.CodePersistenceFailure, ExitFailure, "PERSISTENCE_FAILURE"},
		{store.CodeCorruptState, ExitFailure, "CORRUPT_STATE"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := storeError("add will", &store.Error{Code: tt.code, Op: "add will", Err: errors.New("cause")})
			assert.Equal(t, tt.wantExit, err.Code)
			assert.Equal(t, tt.wantReason, err.Reason)
			assert.Equal(t, tt.wantReason, errorReason(err))
		})
	}
}
