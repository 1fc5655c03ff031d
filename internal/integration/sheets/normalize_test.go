package sheets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizer_ParseDate(t *testing.T) {
	n := NewNormalizer(2025)

	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "serialized token with zero-indexed month",
			raw:    "Date(2025,0,15)",
			want:   date(2025, time.January, 15),
			wantOK: true,
		},
		{
			name:   "serialized token december",
			raw:    "Date(2025,11,19)",
			want:   date(2025, time.December, 19),
			wantOK: true,
		},
		{
			name:   "comma triple keeps literal month",
			raw:    "2025,1,15",
			want:   date(2025, time.January, 15),
			wantOK: true,
		},
		{
			name:   "iso layout",
			raw:    "2025-03-07",
			want:   date(2025, time.March, 7),
			wantOK: true,
		},
		{
			name:   "long month name",
			raw:    "January 15, 2025",
			want:   date(2025, time.January, 15),
			wantOK: true,
		},
		{
			name:   "slash date with full year",
			raw:    "1/15/2025",
			want:   date(2025, time.January, 15),
			wantOK: true,
		},
		{
			name:   "slash date with two-digit year",
			raw:    "1/15/25",
			want:   date(2025, time.January, 15),
			wantOK: true,
		},
		{
			name:   "month and day only uses reference year",
			raw:    "6/12",
			want:   date(2025, time.June, 12),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			raw:    "  2025-03-07  ",
			want:   date(2025, time.March, 7),
			wantOK: true,
		},
		{
			name:   "empty cell",
			raw:    "",
			wantOK: false,
		},
		{
			name:   "freeform text",
			raw:    "see notes",
			wantOK: false,
		},
		{
			name:   "slash garbage",
			raw:    "a/b",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.ParseDate(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizer_ParseDate_TokenAndSlashAgree(t *testing.T) {
	// The same calendar day serialized both ways must land on one date.
	n := NewNormalizer(2025)

	fromToken, ok := n.ParseDate("Date(2025,0,15)")
	if !ok {
		t.Fatal("token form did not parse")
	}
	fromSlash, ok := n.ParseDate("1/15/2025")
	if !ok {
		t.Fatal("slash form did not parse")
	}
	if !fromToken.Equal(fromSlash) {
		t.Errorf("token %v != slash %v", fromToken, fromSlash)
	}
}

func TestNormalizer_ParseCurrency(t *testing.T) {
	n := NewNormalizer(2025)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain dollars", "$500", "500"},
		{"thousands separator", "$1,234.50", "1234.5"},
		{"negative clawback", "-$75", "-75"},
		{"bare number", "250.25", "250.25"},
		{"empty cell", "", "0"},
		{"whitespace only", "   ", "0"},
		{"placeholder text", "pending", "0"},
		{"double negative garbage", "$-1-2", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.ParseCurrency(tt.raw)
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad want %q: %v", tt.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseCurrency(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}

func TestNormalizer_DisplayDate(t *testing.T) {
	n := NewNormalizer(2025)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"token becomes month/day", "Date(2025,0,15)", "1/15"},
		{"token december", "Date(2025,11,3)", "12/3"},
		{"plain text passes through", "1/15", "1/15"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.DisplayDate(tt.raw); got != tt.want {
				t.Errorf("DisplayDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
