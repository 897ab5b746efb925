package models

import "fmt"

// LayoutKind identifies which tabular attendance report shape a document uses.
type LayoutKind string

const (
	LayoutSimple   LayoutKind = "simple"
	LayoutDetailed LayoutKind = "detailed"
)

// ParseLayout maps a user-supplied name to a LayoutKind.
func ParseLayout(s string) (LayoutKind, error) {
	switch s {
	case "simple", "a", "type_a":
		return LayoutSimple, nil
	case "detailed", "b", "type_b":
		return LayoutDetailed, nil
	default:
		return "", fmt.Errorf("unknown layout %q (use simple or detailed)", s)
	}
}

// Row is one workday's attendance record.
//
// Times are canonical "HH:MM" strings and the date is "DD/MM/YYYY".
// Detail is set only for rows of a DETAILED document.
type Row struct {
	Date       string  `json:"date"`
	Weekday    string  `json:"day"`
	Entry      string  `json:"entry"`
	Exit       string  `json:"exit"`
	TotalHours float64 `json:"total"`
	Detail     *Detail `json:"detail,omitempty"`
}

// Detail carries the columns only the detailed-with-overtime layout has.
type Detail struct {
	Location string  `json:"location,omitempty"`
	Break    string  `json:"break"`
	Regular  float64 `json:"regular_100"`
	Tier1    float64 `json:"overtime_125"`
	Tier2    float64 `json:"overtime_150"`
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	if r.Detail != nil {
		d := *r.Detail
		r.Detail = &d
	}
	return r
}

// SummaryInfo holds optional document-level scalars scraped from the raw text.
// A nil field means the value was not found.
type SummaryInfo struct {
	WorkDays     *int     `json:"work_days,omitempty"`
	MonthlyHours *float64 `json:"monthly_hours,omitempty"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`
	TotalDays    *int     `json:"total_days,omitempty"`
}

// ParsedDocument is the ordered set of rows parsed from one source document.
type ParsedDocument struct {
	Layout     LayoutKind
	Rows       []Row
	Summary    SummaryInfo
	DebugLines []DebugLine
}

// Line outcomes recorded in DebugLine.Result.
const (
	LineParsed   = "parsed"
	LineFiltered = "filtered"
	LineRejected = "rejected"
)

// DebugLine captures what the parser did with each non-empty input line.
type DebugLine struct {
	LineNum int    `json:"lineNum"`
	Text    string `json:"text"`
	Result  string `json:"result"`
}

// Count returns how many lines ended with the given result.
func (d *ParsedDocument) Count(result string) int {
	n := 0
	for _, l := range d.DebugLines {
		if l.Result == result {
			n++
		}
	}
	return n
}
