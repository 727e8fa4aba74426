package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/tokcount"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tokcount.ScanService = (*ScanService)(nil)

// ScanService implements tokcount.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// CreateScan records a new scan.
func (s *ScanService) CreateScan(ctx context.Context, scan *tokcount.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	scan.ID = uuid.New().String()
	scan.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scans (id, root, tokenizer, files, tokens, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, scan.ID, scan.Root, scan.Tokenizer, scan.Files, scan.Tokens,
		scan.CreatedAt.Format(timeFormat))

	return err
}

// FindScans retrieves scans matching the filter, newest first.
func (s *ScanService) FindScans(ctx context.Context, filter tokcount.ScanFilter) ([]*tokcount.Scan, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, root, tokenizer, files, tokens, created_at FROM scans WHERE 1=1")

	if filter.Root != nil {
		query.WriteString(" AND root = ?")
		args = append(args, *filter.Root)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []*tokcount.Scan
	for rows.Next() {
		var scan tokcount.Scan
		var createdAt string

		if err := rows.Scan(&scan.ID, &scan.Root, &scan.Tokenizer, &scan.Files, &scan.Tokens, &createdAt); err != nil {
			return nil, err
		}

		scan.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		scans = append(scans, &scan)
	}

	return scans, rows.Err()
}
