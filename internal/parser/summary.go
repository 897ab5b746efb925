package parser

import (
	"regexp"
	"strconv"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

var (
	workDaysPattern     = regexp.MustCompile(`(\d+)\s*ימ`)
	monthlyHoursPattern = regexp.MustCompile(`(\d+\.\d+)\s*שעות`)
	hourlyRatePattern   = regexp.MustCompile(`₪?\s*(\d+\.\d+)\s*שעה`)
	fullDatePattern     = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// ExtractSummary scrapes document-level figures from the raw text. It runs
// independently of row parsing and leaves missing values nil.
func ExtractSummary(raw string, layout models.LayoutKind) models.SummaryInfo {
	var info models.SummaryInfo

	if layout == models.LayoutDetailed {
		n := len(fullDatePattern.FindAllString(raw, -1))
		info.TotalDays = &n
		return info
	}

	if m := workDaysPattern.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			info.WorkDays = &n
		}
	}
	if m := monthlyHoursPattern.FindStringSubmatch(raw); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			info.MonthlyHours = &f
		}
	}
	if m := hourlyRatePattern.FindStringSubmatch(raw); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			info.HourlyRate = &f
		}
	}

	return info
}
