package tokcount

import (
	"context"
	"time"
)

// Scan records one counted path.
type Scan struct {
	ID        string    `json:"id"`
	Root      string    `json:"root"`
	Tokenizer string    `json:"tokenizer"`
	Files     int       `json:"files"`
	Tokens    int       `json:"tokens"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the scan contains invalid fields.
func (s *Scan) Validate() error {
	if s.Root == "" {
		return Errorf(EINVALID, "scan root required")
	}
	if s.Tokenizer == "" {
		return Errorf(EINVALID, "scan tokenizer required")
	}
	if s.Files < 0 || s.Tokens < 0 {
		return Errorf(EINVALID, "scan counts must not be negative")
	}
	return nil
}

// ScanService represents a service for recording scan history.
type ScanService interface {
	// CreateScan records a new scan. ID and CreatedAt are assigned.
	CreateScan(ctx context.Context, scan *Scan) error

	// FindScans retrieves scans matching the filter, newest first.
	FindScans(ctx context.Context, filter ScanFilter) ([]*Scan, error)
}

// ScanFilter represents a filter for FindScans.
type ScanFilter struct {
	Root *string `json:"root"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
