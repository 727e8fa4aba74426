package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/tokcount"
	main "github.com/fwojciec/tokcount/cmd/tokcount"
	"github.com/fwojciec/tokcount/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists scans with ID, tokens and root", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScansFn: func(_ context.Context, filter tokcount.ScanFilter) ([]*tokcount.Scan, error) {
				assert.Nil(t, filter.Root)
				assert.Equal(t, 20, filter.Limit)
				return []*tokcount.Scan{
					{ID: "scan-2", Root: "/src/app", Tokens: 4200, CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)},
					{ID: "scan-1", Root: "/src/lib", Tokens: 7, CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Suffix: "tokens",
			Scans:  scans,
		}

		err := (&main.HistoryCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "scan-2")
		assert.Contains(t, output, "4,200 tokens  /src/app")
		assert.Contains(t, output, "scan-1")
		assert.Contains(t, output, "7 tokens  /src/lib")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("scan-2")), bytes.Index(stdout.Bytes(), []byte("scan-1")))
	})

	t.Run("filters by absolute path", func(t *testing.T) {
		t.Parallel()

		var root *string
		scans := &mock.ScanService{
			FindScansFn: func(_ context.Context, filter tokcount.ScanFilter) ([]*tokcount.Scan, error) {
				root = filter.Root
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		err := (&main.HistoryCmd{Path: "docs", Limit: 5}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, root)
		assert.True(t, filepath.IsAbs(*root))
		assert.Equal(t, "docs", filepath.Base(*root))
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScansFn: func(_ context.Context, _ tokcount.ScanFilter) ([]*tokcount.Scan, error) {
				return []*tokcount.Scan{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Scans:  scans,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No counts recorded yet")
	})

	t.Run("reports errors", func(t *testing.T) {
		t.Parallel()

		scans := &mock.ScanService{
			FindScansFn: func(_ context.Context, _ tokcount.ScanFilter) ([]*tokcount.Scan, error) {
				return nil, tokcount.Errorf(tokcount.EINTERNAL, "database locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Scans:  scans,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: database locked\n", stderr.String())
	})
}
