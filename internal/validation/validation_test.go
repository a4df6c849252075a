package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/kakeibo/internal/entryerror"
	"fjacquet/kakeibo/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	tmpDir := t.TempDir()

	// Create a test file
	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	// Get absolute paths
	absFile, err := filepath.Abs(testFile)
	assert.NoError(t, err)
	absDir, err := filepath.Abs(tmpDir)
	assert.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{
			name:        "Valid absolute file path",
			path:        absFile,
			expectError: false,
		},
		{
			name:        "Valid absolute directory path",
			path:        absDir,
			expectError: false,
		},
		{
			name:        "Non-existent path",
			path:        "/nonexistent/path/to/file.txt",
			expectError: true,
			errContains: "path does not exist",
		},
		{
			name:        "Missing relative path",
			path:        "relative/path",
			expectError: true,
			errContains: "path does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidPath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		assert.NoError(t, validation.IsValidOutputFormat(format), format)
	}
	for _, format := range []string{"xml", "csv", "", "JSON"} {
		err := validation.IsValidOutputFormat(format)
		if assert.Error(t, err, format) {
			assert.Contains(t, err.Error(), "unsupported output format")
		}
	}
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		name        string
		mode        os.FileMode
		expectError bool
	}{
		{name: "owner only", mode: 0600},
		{name: "group readable", mode: 0640},
		{name: "directory mode", mode: 0750},
		{name: "others can read", mode: 0644, expectError: true},
		{name: "world writable", mode: 0777, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			if tt.expectError {
				assert.ErrorContains(t, err, "too permissive")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        int64
		expectError bool
	}{
		{name: "plain integer", raw: "1200", want: 1200},
		{name: "surrounding spaces", raw: " 980 ", want: 980},
		{name: "thousands separators", raw: "32,000", want: 32000},
		{name: "yen sign", raw: "¥5,000", want: 5000},
		{name: "full width yen sign", raw: "￥700", want: 700},
		{name: "empty", raw: "", expectError: true},
		{name: "zero", raw: "0", expectError: true},
		{name: "negative", raw: "-300", expectError: true},
		{name: "decimal", raw: "12.5", expectError: true},
		{name: "trailing text", raw: "120yen", expectError: true},
		{name: "letters", raw: "abc", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ParseAmount(tt.raw)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, entryerror.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
