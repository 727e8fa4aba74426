package mock

import (
	"context"

	"github.com/fwojciec/tokcount"
)

var _ tokcount.ScanService = (*ScanService)(nil)

// ScanService is a mock implementation of tokcount.ScanService.
type ScanService struct {
	CreateScanFn func(ctx context.Context, scan *tokcount.Scan) error
	FindScansFn  func(ctx context.Context, filter tokcount.ScanFilter) ([]*tokcount.Scan, error)
}

func (s *ScanService) CreateScan(ctx context.Context, scan *tokcount.Scan) error {
	return s.CreateScanFn(ctx, scan)
}

func (s *ScanService) FindScans(ctx context.Context, filter tokcount.ScanFilter) ([]*tokcount.Scan, error) {
	return s.FindScansFn(ctx, filter)
}
