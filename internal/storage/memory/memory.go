package memory

import (
	"sync"

	"github.com/MikhailRaia/testpost/internal/model"
)

// Storage implements in-memory FixtureStorage for testing and development.
// Like the file storage, it keeps only the latest URL and report.
type Storage struct {
	url       string
	report    model.Report
	hasURL    bool
	hasReport bool
	saveCount int
	mutex     sync.RWMutex
}

// NewStorage creates a new in-memory storage instance.
func NewStorage() *Storage {
	return &Storage{}
}

// SaveURL replaces the stored URL.
func (s *Storage) SaveURL(url string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.url = url
	s.hasURL = true
	s.saveCount++
	return nil
}

// SaveReport replaces the stored report.
func (s *Storage) SaveReport(report model.Report) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.report = report
	s.hasReport = true
	return nil
}

// URL returns the last saved URL.
func (s *Storage) URL() (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.url, s.hasURL
}

// Report returns the last saved report.
func (s *Storage) Report() (model.Report, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.report, s.hasReport
}

// URLSaves reports how many times SaveURL was called.
func (s *Storage) URLSaves() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.saveCount
}
