// Package variation produces a plausible alternate attendance dataset by
// nudging each row's clock readings and recomputing the derived hours.
package variation

import (
	"errors"
	"fmt"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// ErrUnknownLayout is returned by New for a layout with no strategy.
var ErrUnknownLayout = errors.New("unknown layout")

// Source supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Strategy varies a single row of one layout.
type Strategy interface {
	// Vary returns a perturbed copy of row; row itself is left untouched.
	Vary(row models.Row) (models.Row, error)
	Layout() models.LayoutKind
}

// New returns the variation strategy for layout drawing from src.
func New(layout models.LayoutKind, src Source) (Strategy, error) {
	switch layout {
	case models.LayoutSimple:
		return &SimpleStrategy{src: src}, nil
	case models.LayoutDetailed:
		return &DetailedStrategy{src: src}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
}

// Randomize varies every row independently and returns the new rows in the
// same order. The input slice and its rows are not modified.
func Randomize(rows []models.Row, layout models.LayoutKind, src Source) ([]models.Row, error) {
	s, err := New(layout, src)
	if err != nil {
		return nil, err
	}
	out := make([]models.Row, 0, len(rows))
	for i, row := range rows {
		varied, err := s.Vary(row)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, row.Date, err)
		}
		out = append(out, varied)
	}
	return out, nil
}

// uniform returns an integer in [lo, hi].
func uniform(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
