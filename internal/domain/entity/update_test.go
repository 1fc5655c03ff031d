package entity

import (
	"testing"
	"time"
)

func TestUpdate_VisibleTo(t *testing.T) {
	rep := ActorProfile{Email: "casey@phoenix.test", Team: "KYT1", Tier: TierRepresentative}

	tests := []struct {
		name   string
		target string
		want   bool
	}{
		{"all", "All", true},
		{"own team", "KYT1", true},
		{"other team", "KYT2", false},
		{"own email", "casey@phoenix.test", true},
		{"own email different case", "Casey@Phoenix.test", true},
		{"other email", "riley@phoenix.test", false},
		// Team names are sheet-controlled identifiers and compare exactly.
		{"team different case", "kyt1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Update{Message: "m", Target: tt.target}
			if got := u.VisibleTo(rep); got != tt.want {
				t.Errorf("VisibleTo(target=%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestUpdate_ActiveAt(t *testing.T) {
	day := func(d int) *time.Time {
		v := time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	at := func(d, hour int) time.Time {
		return time.Date(2025, time.June, d, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		now   time.Time
		want  bool
	}{
		{"open window", nil, nil, at(15, 12), true},
		{"before start", day(10), nil, at(9, 23), false},
		{"on start day", day(10), nil, at(10, 0), true},
		{"inside window", day(10), day(20), at(15, 12), true},
		{"end date is inclusive through its last moment", day(10), day(20), at(20, 23), true},
		{"after end", day(10), day(20), at(21, 0), false},
		{"only end bound", nil, day(20), at(5, 8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Update{Message: "m", StartDate: tt.start, EndDate: tt.end}
			if got := u.ActiveAt(tt.now); got != tt.want {
				t.Errorf("ActiveAt(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
