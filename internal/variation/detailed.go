package variation

import (
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/hours"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

const (
	detailedEntryShift = 20
	detailedExitShift  = 30
	breakShift         = 10
	defaultBreak       = 30
	maxBreak           = 60
	detailedGap        = 3 * 60
)

// DetailedStrategy shifts entry, exit and break, then rebuilds the total and
// the overtime bands from the new values.
type DetailedStrategy struct {
	src Source
}

func (s *DetailedStrategy) Layout() models.LayoutKind { return models.LayoutDetailed }

// Vary draws entry (±20 min), exit (±30 min) and break (±10 min, kept within
// 0..60) shifts in that order. A missing or unreadable break counts as 30
// minutes. An exit at or before the entry is moved to three hours and up to
// 59 minutes after it.
func (s *DetailedStrategy) Vary(row models.Row) (models.Row, error) {
	row = row.Clone()

	entry, exit, err := parseSpan(row)
	if err != nil {
		return models.Row{}, err
	}
	if row.Detail == nil {
		row.Detail = &models.Detail{}
	}

	brk := defaultBreak
	if b, err := hours.ParseClock(row.Detail.Break); err == nil {
		brk = b
	}

	entry = hours.Wrap(entry + uniform(s.src, -detailedEntryShift, detailedEntryShift))
	exit = hours.Wrap(exit + uniform(s.src, -detailedExitShift, detailedExitShift))
	brk = clamp(brk+uniform(s.src, -breakShift, breakShift), 0, maxBreak)
	if exit <= entry {
		exit = hours.Wrap(entry + detailedGap + uniform(s.src, 0, 59))
	}

	total := hours.BetweenMinutes(entry, exit, brk)
	bands := hours.Breakdown(total)

	row.Entry = hours.FormatClock(entry)
	row.Exit = hours.FormatClock(exit)
	row.TotalHours = total
	row.Detail.Break = hours.FormatDuration(brk)
	row.Detail.Regular = bands.Regular
	row.Detail.Tier1 = bands.Tier1
	row.Detail.Tier2 = bands.Tier2
	return row, nil
}
