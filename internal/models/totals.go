package models

import "github.com/shopspring/decimal"

// DefaultHourlyRate is used for payment totals when the document carries no rate.
const DefaultHourlyRate = 32.0

// Totals aggregates a document's rows.
type Totals struct {
	Days    int
	Hours   float64
	Regular float64
	Tier1   float64
	Tier2   float64
}

// Totals sums hours across all rows. Band sums stay zero for SIMPLE documents.
func (d *ParsedDocument) Totals() Totals {
	hours, regular, tier1, tier2 := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range d.Rows {
		hours = hours.Add(decimal.NewFromFloat(r.TotalHours))
		if r.Detail != nil {
			regular = regular.Add(decimal.NewFromFloat(r.Detail.Regular))
			tier1 = tier1.Add(decimal.NewFromFloat(r.Detail.Tier1))
			tier2 = tier2.Add(decimal.NewFromFloat(r.Detail.Tier2))
		}
	}
	return Totals{
		Days:    len(d.Rows),
		Hours:   hours.Round(2).InexactFloat64(),
		Regular: regular.Round(2).InexactFloat64(),
		Tier1:   tier1.Round(2).InexactFloat64(),
		Tier2:   tier2.Round(2).InexactFloat64(),
	}
}

// HourlyRate returns the rate scraped from the document, or fallback.
func (d *ParsedDocument) HourlyRate(fallback float64) float64 {
	if d.Summary.HourlyRate != nil {
		return *d.Summary.HourlyRate
	}
	return fallback
}

// Payment is total hours multiplied by the hourly rate, rounded to agorot.
func (d *ParsedDocument) Payment(rate float64) float64 {
	hours := decimal.NewFromFloat(d.Totals().Hours)
	return hours.Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}
