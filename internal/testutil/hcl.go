// Package testutil provides shared helpers for tests that exercise the full
// description-to-model pipeline.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDescription writes an HCL description to a temp file and returns its
// path. The file is removed with the test's temp dir.
func WriteDescription(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "structure.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
