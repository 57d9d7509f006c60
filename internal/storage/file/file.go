package file

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/multierr"

	"github.com/MikhailRaia/testpost/internal/model"
)

// Storage implements FixtureStorage on the local filesystem.
// Parent directories are never created: an unwritable destination is an error.
type Storage struct {
	urlPath    string
	reportPath string
}

// NewStorage creates a file-backed storage. An empty reportPath disables reports.
func NewStorage(urlPath, reportPath string) *Storage {
	return &Storage{
		urlPath:    urlPath,
		reportPath: reportPath,
	}
}

// SaveURL writes url to the URL file exactly as given, with no trailing newline.
func (s *Storage) SaveURL(url string) error {
	return writeFile(s.urlPath, []byte(url))
}

// SaveReport writes report as indented JSON.
func (s *Storage) SaveReport(report model.Report) error {
	if s.reportPath == "" {
		return nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return writeFile(s.reportPath, data)
}

func writeFile(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: %w", err)
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}

	return nil
}
