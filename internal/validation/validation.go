// Package validation checks user-supplied values before they reach the core.
package validation

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fjacquet/kakeibo/internal/entryerror"
)

// IsValidPath checks if a given path exists and is accessible.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml'", format)
	}
}

// IsValidFilePermissions checks that others have no access to a data file.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600 or 0644", mode.String())
	}
	return nil
}

// ParseAmount parses a whole-unit amount as typed by the user.
// A leading yen sign and thousands separators are accepted; anything else
// that is not a positive integer is rejected.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "¥")
	s = strings.TrimPrefix(s, "￥")
	s = strings.ReplaceAll(s, ",", "")

	if s == "" {
		return 0, &entryerror.InvalidEntryInputError{
			Field:  "amount",
			Reason: "amount is required",
		}
	}

	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &entryerror.InvalidEntryInputError{
			Field:  "amount",
			Value:  raw,
			Reason: "must be a whole number",
			Err:    err,
		}
	}
	if amount <= 0 {
		return 0, &entryerror.InvalidEntryInputError{
			Field:  "amount",
			Value:  raw,
			Reason: "must be a positive integer",
		}
	}
	return amount, nil
}
