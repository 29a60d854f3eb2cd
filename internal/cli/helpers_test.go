package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roach88/terminus/internal/config"
	"github.com/roach88/terminus/internal/store"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

type cliResult struct {
	stdout string
	stderr string
	code   int
}

// testDB returns a fresh database path inside t.TempDir().
func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "terminus.db")
}

// runCLI runs one CLI invocation against dbPath with a fixed clock.
// Configuration comes from the test, never from the environment.
func runCLI(t *testing.T, dbPath string, args ...string) cliResult {
	t.Helper()
	opts := &RootOptions{
		Config: &config.Config{
			DBPath:    dbPath,
			Key:       store.DefaultKey,
			LogLevel:  "warn",
			LogFormat: "console",
		},
		Logger: zap.NewNop(),
		Now:    func() time.Time { return testNow },
	}

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), opts, args, &stdout, &stderr)
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// mustRun runs the CLI and fails the test on a non-zero exit code.
func mustRun(t *testing.T, dbPath string, args ...string) cliResult {
	t.Helper()
	res := runCLI(t, dbPath, args...)
	require.Equal(t, ExitSuccess, res.code, "stdout: %s\nstderr: %s", res.stdout, res.stderr)
	return res
}

// decodeData decodes the data payload of a json-mode response.
func decodeData[T any](t *testing.T, stdout string) T {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	require.Equal(t, "ok", resp.Status, stdout)

	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out), string(resp.Data))
	return out
}

// decodeError decodes the error payload of a json-mode response.
func decodeError(t *testing.T, stdout string) CLIError {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	require.Equal(t, "error", resp.Status, stdout)
	require.NotNil(t, resp.Error)
	return *resp.Error
}
