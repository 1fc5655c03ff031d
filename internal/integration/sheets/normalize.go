// Package sheets ingests the shared company spreadsheet: it fetches raw rows,
// normalizes heterogeneous cell values, and maps them onto domain entities.
package sheets

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// gvizDatePattern matches the spreadsheet's serialized date token, e.g.
// "Date(2025,11,19)". The month inside the token is zero-indexed.
var gvizDatePattern = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)

// genericDateLayouts are tried, in order, for cells that hold an ordinary
// textual date rather than a spreadsheet token.
var genericDateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"1/2/2006",
	time.RFC3339,
}

// Normalizer converts raw spreadsheet cell text into typed values. Sheet
// cells are edited by hand, so every path here tolerates garbage: a date
// that cannot be parsed is absent, an amount that cannot be parsed is zero.
type Normalizer struct {
	// ReferenceYear is assumed for bare "M/D" date cells.
	ReferenceYear int
}

// NewNormalizer creates a normalizer for the given reference year.
func NewNormalizer(referenceYear int) Normalizer {
	return Normalizer{ReferenceYear: referenceYear}
}

// ParseDate resolves a raw date cell to a calendar date. The forms are tried
// strictly in this order, returning the first success:
//
//  1. "Date(Y,M,D)" token, month zero-indexed
//  2. "Y,M,D" comma triple, month taken literally (NOT decremented — the
//     two source formats genuinely disagree and historical report totals
//     depend on keeping both as-is)
//  3. common textual layouts
//  4. "M/D/Y" with two-digit years promoted to 2000+Y
//  5. "M/D" with the configured reference year
//
// Anything else is treated as absent, never an error.
func (n Normalizer) ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := gvizDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC), true
	}

	if parts := strings.Split(s, ","); len(parts) == 3 {
		year, errY := strconv.Atoi(strings.TrimSpace(parts[0]))
		month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		day, errD := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errY == nil && errM == nil && errD == nil {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	switch parts := strings.Split(s, "/"); len(parts) {
	case 3:
		month, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
		day, errD := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errM == nil && errD == nil && errY == nil {
			if year < 100 {
				year += 2000
			}
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	case 2:
		month, errM := strconv.Atoi(strings.TrimSpace(parts[0]))
		day, errD := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errM == nil && errD == nil {
			return time.Date(n.ReferenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// ParseOptionalDate is ParseDate returning a pointer, nil when absent.
func (n Normalizer) ParseOptionalDate(raw string) *time.Time {
	if t, ok := n.ParseDate(raw); ok {
		return &t
	}
	return nil
}

var currencyReplacer = strings.NewReplacer("$", "", ",", "")

// ParseCurrency resolves a raw currency cell ("$1,234.50", "-$75", blank,
// placeholder text) to a signed decimal. Unparseable cells yield zero so a
// stray annotation in a money column never poisons an aggregate.
func (n Normalizer) ParseCurrency(raw string) decimal.Decimal {
	s := strings.TrimSpace(currencyReplacer.Replace(raw))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DisplayDate renders an itinerary date cell for the client: "Date(Y,M,D)"
// tokens become "M/D" (month converted to one-indexed), everything else is
// passed through untouched.
func (n Normalizer) DisplayDate(raw string) string {
	s := strings.TrimSpace(raw)
	if m := gvizDatePattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return strconv.Itoa(month+1) + "/" + strconv.Itoa(day)
	}
	return s
}
