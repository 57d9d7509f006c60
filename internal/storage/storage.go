package storage

import "github.com/MikhailRaia/testpost/internal/model"

// FixtureStorage persists the artifacts of a run.
// Every save replaces what a previous run left behind.
type FixtureStorage interface {
	SaveURL(url string) error

	SaveReport(report model.Report) error
}
