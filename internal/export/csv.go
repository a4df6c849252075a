// Package export reads and writes ledger entries as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured
const DefaultDelimiter = ','

// CSV converts entries to and from delimited text
type CSV struct {
	delimiter rune
	logger    logging.Logger
}

// NewCSV creates a CSV codec; a zero delimiter means DefaultDelimiter.
func NewCSV(delimiter rune, logger logging.Logger) *CSV {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &CSV{delimiter: delimiter, logger: logger}
}

// Delimiter returns the field delimiter in use
func (c *CSV) Delimiter() rune {
	return c.delimiter
}

// Write marshals entries with a header row.
func (c *CSV) Write(w io.Writer, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.delimiter

	if err := gocsv.MarshalCSV(entries, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		c.logger.WithError(err).Error("Failed to marshal entries to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// Read unmarshals entries from CSV with a header row.
// Columns are matched by header name; unknown columns are ignored.
func (c *CSV) Read(r io.Reader) ([]models.Entry, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = c.delimiter

	var entries []models.Entry
	if err := gocsv.UnmarshalCSV(csvReader, &entries); err != nil {
		c.logger.WithError(err).Error("Failed to parse CSV data")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// WriteFile writes entries to a CSV file, creating its directory if needed.
func (c *CSV) WriteFile(path string, entries []models.Entry) (err error) {
	log := c.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	)
	log.Info("Writing entries to CSV file")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			log.WithError(err).Error("Failed to create directory")
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile) // #nosec G304 -- path is user-provided by design
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", closeErr)
		}
	}()

	if err := c.Write(file, entries); err != nil {
		return err
	}

	log.Info("Successfully wrote entries to CSV file")
	return nil
}

// ReadFile reads entries from a CSV file.
func (c *CSV) ReadFile(path string) ([]models.Entry, error) {
	log := c.logger.WithField(logging.FieldFile, path)
	log.Info("Reading CSV file")

	file, err := os.Open(path) // #nosec G304 -- path is user-provided by design
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	entries, err := c.Read(file)
	if err != nil {
		return nil, err
	}

	log.WithField(logging.FieldCount, len(entries)).Info("Successfully read CSV data")
	return entries, nil
}
