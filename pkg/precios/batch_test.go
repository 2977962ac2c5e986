package precios

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	paths map[int]string
	calls []int
}

func (s *fakeSource) FetchOrReuse(ctx context.Context, year int, dir string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, year)
	if p, ok := s.paths[year]; ok {
		return p, nil
	}
	return "", fmt.Errorf("no workbook for %d", year)
}

func TestParseYears(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", sampleGrid())
	src := &fakeSource{paths: map[int]string{2023: path, 2024: path}}

	results, err := ParseYears(context.Background(), src, []int{2023, 2024, 2025}, BatchOptions{
		Dir:          t.TempDir(),
		Concurrency:  2,
		ConvertPerKg: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.ElementsMatch(t, []int{2023, 2024, 2025}, src.calls)

	for i, year := range []int{2023, 2024, 2025} {
		assert.Equal(t, year, results[i].Year)
	}

	require.NoError(t, results[0].Err)
	assert.Len(t, results[0].Records, 4)
	assert.Equal(t, path, results[1].Path)
	assert.InDelta(t, 0.2305, *results[1].Records[0].Precios[0].Valor, 1e-12)

	assert.Error(t, results[2].Err)
	assert.Empty(t, results[2].Records)
}

func TestParseYearsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseYears(ctx, &fakeSource{}, []int{2024}, BatchOptions{})
	assert.True(t, errors.Is(err, context.Canceled))
}
