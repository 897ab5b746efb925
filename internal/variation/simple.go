package variation

import (
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/hours"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

const (
	simpleShift = 20 // minutes either way, entry and exit
	simpleGap   = 2 * 60
)

// SimpleStrategy shifts entry and exit by up to 20 minutes each and
// recomputes the total.
type SimpleStrategy struct {
	src Source
}

func (s *SimpleStrategy) Layout() models.LayoutKind { return models.LayoutSimple }

// Vary keeps exit after entry: when the shifted exit lands at or before the
// shifted entry, exit is moved to two hours and up to 59 minutes after it.
func (s *SimpleStrategy) Vary(row models.Row) (models.Row, error) {
	row = row.Clone()

	entry, exit, err := parseSpan(row)
	if err != nil {
		return models.Row{}, err
	}

	entry = hours.Wrap(entry + uniform(s.src, -simpleShift, simpleShift))
	exit = hours.Wrap(exit + uniform(s.src, -simpleShift, simpleShift))
	if exit <= entry {
		exit = hours.Wrap(entry + simpleGap + uniform(s.src, 0, 59))
	}

	row.Entry = hours.FormatClock(entry)
	row.Exit = hours.FormatClock(exit)
	row.TotalHours = hours.BetweenMinutes(entry, exit, 0)
	return row, nil
}

func parseSpan(row models.Row) (int, int, error) {
	entry, err := hours.ParseClock(row.Entry)
	if err != nil {
		return 0, 0, err
	}
	exit, err := hours.ParseClock(row.Exit)
	if err != nil {
		return 0, 0, err
	}
	return entry, exit, nil
}
