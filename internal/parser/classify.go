package parser

import (
	"strings"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// Scores is the keyword evidence collected for each layout.
type Scores struct {
	Detailed int
	Simple   int
}

type signal struct {
	weight  int
	needles []string
}

var detailedSignals = []signal{
	{2, []string{"הפסקה"}},
	{3, []string{"100%", "125%", "150%"}},
	{2, []string{"מקום", "מקו("}}, // "מקו(" is a frequent misread of the location header
	{1, []string{"נ.ע.", "הנשר"}},
}

var simpleSignals = []signal{
	{3, []string{"מחיר לשעה"}},
	{2, []string{`סה"כ לתשלום`, "לתשלום"}},
	{2, []string{"ימי עבודה לחודש", "יומי עבודה"}},
}

// Score tests the raw text, as recognized and lower-cased, for layout keywords.
func Score(raw string) Scores {
	lower := strings.ToLower(raw)
	return Scores{
		Detailed: sumSignals(detailedSignals, raw, lower),
		Simple:   sumSignals(simpleSignals, raw, lower),
	}
}

// Classify picks DETAILED only when its evidence outweighs SIMPLE's.
// Keyword-free or tied text is SIMPLE.
func Classify(raw string) models.LayoutKind {
	s := Score(raw)
	if s.Detailed > s.Simple {
		return models.LayoutDetailed
	}
	return models.LayoutSimple
}

func sumSignals(signals []signal, raw, lower string) int {
	total := 0
	for _, s := range signals {
		for _, needle := range s.needles {
			if strings.Contains(raw, needle) || strings.Contains(lower, needle) {
				total += s.weight
				break
			}
		}
	}
	return total
}
