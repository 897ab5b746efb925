package parser

import (
	"regexp"
	"strings"
)

// ocrArtifacts are fragments Tesseract produces on scanned Hebrew attendance
// reports, applied in order. Most are Latin noise read out of table borders.
var ocrArtifacts = []struct{ from, to string }{
	{"|", " "},
	{"\u200e", ""}, // LRM
	{"\u200f", ""}, // RLM
	{"jaa", ""},
	{"pia", ""},
	{"ja", ""},
	{"wow", ""},
	{"wan", ""},
	{"nw", ""},
	{"att", ""},
	{"mvs", ""},
	{"ere", ""},
	{"SR", ""},
	{"im", ""},
	{"ce", ""},
}

var horizontalSpace = regexp.MustCompile(`[ \t]+`)

// Normalize strips known OCR artifacts and collapses runs of spaces and tabs
// to a single space. Line breaks are kept as they are.
//
// The artifact table is reapplied until nothing changes, since removing one
// fragment can join its neighbours into another ("iimm" -> "im").
func Normalize(raw string) string {
	text := raw
	for {
		next := text
		for _, a := range ocrArtifacts {
			next = strings.ReplaceAll(next, a.from, a.to)
		}
		if next == text {
			break
		}
		text = next
	}
	return horizontalSpace.ReplaceAllString(text, " ")
}
