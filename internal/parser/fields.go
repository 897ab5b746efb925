package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Field patterns. Matches are checked for digit context separately, since RE2
// has no lookaround.
var (
	timePattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	datePattern    = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})`)
	decimalPattern = regexp.MustCompile(`\d+\.\d+`)
	// hoursPattern matches an hours figure with exactly two fraction digits.
	hoursPattern = regexp.MustCompile(`\d+\.\d{2}`)
)

// Weekday names as printed in the reports, Sunday first.
var weekdays = []string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

// weekdayFragments maps truncated or misread weekday names to the full name.
// An empty name means the fragment is a known false positive and the line
// has no weekday.
var weekdayFragments = []struct{ fragment, name string }{
	{"ראש", "ראשון"},
	{"שנ", "שני"},
	{"שלי", "שלישי"},
	{"רבי", "רביעי"},
	{"חמי", "חמישי"},
	{"שיש", "שישי"},
	{"חמיש", "חמישי"},
	{"גונן", ""},
}

// ExtractTime returns the first "H:MM" or "HH:MM" reading not embedded in a
// longer digit run, with the hour zero-padded.
func ExtractTime(text string) (string, bool) {
	times := findTimes(text, true)
	if len(times) == 0 {
		return "", false
	}
	return times[0], true
}

// ExtractDate returns the first D/M/YY or D/M/YYYY date as DD/MM/YYYY.
// Two-digit years are taken to be in the 2000s.
func ExtractDate(text string) (string, bool) {
	for _, m := range boundedMatches(datePattern, text) {
		day := padTwo(text[m[2]:m[3]])
		month := padTwo(text[m[4]:m[5]])
		year := text[m[6]:m[7]]
		if len(year) == 2 {
			year = "20" + year
		}
		return day + "/" + month + "/" + year, true
	}
	return "", false
}

// ExtractDecimal returns the first number with a fractional part.
func ExtractDecimal(text string) (float64, bool) {
	m := decimalPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IdentifyWeekday finds a full weekday name in text, falling back to known
// fragments of one.
func IdentifyWeekday(text string) (string, bool) {
	for _, day := range weekdays {
		if strings.Contains(text, day) {
			return day, true
		}
	}
	for _, f := range weekdayFragments {
		if strings.Contains(text, f.fragment) {
			return f.name, f.name != ""
		}
	}
	return "", false
}

// findTimes returns every clock reading in text, zero-padded. With bounded
// set, readings that touch another digit are skipped.
func findTimes(text string, bounded bool) []string {
	var idx [][]int
	if bounded {
		idx = boundedMatches(timePattern, text)
	} else {
		idx = timePattern.FindAllStringSubmatchIndex(text, -1)
	}
	times := make([]string, 0, len(idx))
	for _, m := range idx {
		times = append(times, padTwo(text[m[2]:m[3]])+":"+text[m[4]:m[5]])
	}
	return times
}

// findFloats parses every match of re in text.
func findFloats(re *regexp.Regexp, text string) []float64 {
	var out []float64
	for _, s := range re.FindAllString(text, -1) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// boundedMatches returns the submatch indexes of re whose match is neither
// preceded nor followed by a digit.
func boundedMatches(re *regexp.Regexp, text string) [][]int {
	var out [][]int
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && isDigit(text[m[0]-1]) {
			continue
		}
		if m[1] < len(text) && isDigit(text[m[1]]) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
