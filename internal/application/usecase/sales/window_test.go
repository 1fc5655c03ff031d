package sales

import (
	"reflect"
	"testing"
	"time"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

func txOn(y int, m time.Month, d int) entity.SaleTransaction {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return entity.SaleTransaction{Date: &t}
}

func TestAvailableMonths(t *testing.T) {
	t.Run("deduped and chronological regardless of row order", func(t *testing.T) {
		transactions := []entity.SaleTransaction{
			txOn(2025, time.March, 5),
			txOn(2025, time.January, 2),
			txOn(2025, time.March, 20),
			txOn(2024, time.December, 31),
			{}, // undated row contributes nothing
			txOn(2025, time.January, 15),
		}

		got := AvailableMonths(transactions)
		want := []string{"December 2024", "January 2025", "March 2025"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("AvailableMonths = %v, want %v", got, want)
		}
	})

	t.Run("no dated transactions", func(t *testing.T) {
		if got := AvailableMonths([]entity.SaleTransaction{{}, {}}); len(got) != 0 {
			t.Errorf("AvailableMonths = %v, want empty", got)
		}
	})
}

func TestDefaultWindow(t *testing.T) {
	if got := DefaultWindow([]string{"January 2025", "February 2025"}); got != "February 2025" {
		t.Errorf("DefaultWindow = %q, want most recent month", got)
	}
	if got := DefaultWindow(nil); got != WindowAll {
		t.Errorf("DefaultWindow(empty) = %q, want %q", got, WindowAll)
	}
}

func TestWindowStepping(t *testing.T) {
	months := []string{"January 2025", "February 2025", "April 2025"}

	tests := []struct {
		name    string
		step    func([]string, string) string
		current string
		want    string
	}{
		{"previous in middle", PreviousWindow, "February 2025", "January 2025"},
		{"previous skips missing march", PreviousWindow, "April 2025", "February 2025"},
		{"previous at earliest is no-op", PreviousWindow, "January 2025", "January 2025"},
		{"previous from unknown is no-op", PreviousWindow, "All Sales", "All Sales"},
		{"next in middle", NextWindow, "February 2025", "April 2025"},
		{"next at latest is no-op", NextWindow, "April 2025", "April 2025"},
		{"next from unknown is no-op", NextWindow, "July 2030", "July 2030"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step(months, tt.current); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInWindow(t *testing.T) {
	dated := txOn(2025, time.January, 15)
	undated := entity.SaleTransaction{RawDate: "soon"}

	if !inWindow(dated, WindowAll) || !inWindow(undated, WindowAll) {
		t.Error("all-sales window must admit every transaction")
	}
	if !inWindow(dated, "") || !inWindow(undated, "") {
		t.Error("unset window must admit every transaction")
	}
	if !inWindow(dated, "January 2025") {
		t.Error("dated transaction excluded from its own month")
	}
	if inWindow(dated, "February 2025") {
		t.Error("dated transaction admitted to the wrong month")
	}
	if inWindow(undated, "January 2025") {
		t.Error("undated transaction admitted to a month window")
	}
}
