package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// ResolveHeader locates the real header row of a raw grid and returns its
// index together with cleaned, unique, non-empty column names.
//
// The header is the first row with at least one non-blank cell, which
// tolerates decorative blank rows above it. Blank header cells become
// "Col_<n>" (1-based position); the Nth repeat of a name becomes
// "<name>_<N>". ok is false when the grid has no non-blank rows at all.
func ResolveHeader(grid entity.RawGrid) (headerRow int, names []string, ok bool) {
	for i, row := range grid {
		if rowIsBlank(row) {
			continue
		}
		return i, cleanHeaderNames(row), true
	}
	return 0, nil, false
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cleanHeaderNames(row []string) []string {
	names := make([]string, 0, len(row))
	seen := make(map[string]int, len(row))

	for i, cell := range row {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Col_%d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		names = append(names, name)
	}
	return names
}
