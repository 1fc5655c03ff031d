// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleTransaction is one normalized row of the Sales sheet. Monetary cells
// arrive as currency-formatted text and are normalized to decimals at
// ingestion; unparseable cells normalize to zero. The date may be absent
// when the cell could not be parsed, in which case the transaction is
// excluded from month-bucketed views but still counts toward "All Sales".
type SaleTransaction struct {
	Date     *time.Time
	RawDate  string
	Team     string
	RepName  string
	RepEmail string
	Client   string

	SalePrice   decimal.Decimal
	Collected   decimal.Decimal
	MerchantFee decimal.Decimal
	ExitCost    decimal.Decimal
	Net         decimal.Decimal
	// Commission may be negative, representing a clawback.
	Commission decimal.Decimal

	// Percentage is display-only and never aggregated.
	Percentage string
	Notes      string
}

// RepSummary aggregates one representative's transactions inside a window.
// Transactions keep source order; TotalCommission always equals the sum of
// their commissions and is recomputed from scratch per window.
type RepSummary struct {
	RepName         string
	RepEmail        string
	Team            string
	TotalCommission decimal.Decimal
	Transactions    []SaleTransaction
}

// TeamSummary aggregates one team's transactions inside a window. Every
// transaction carrying the team value contributes to the totals; Reps is the
// subset of rep summaries whose Team matches, attached after rep aggregation.
type TeamSummary struct {
	Team           string
	TotalCollected decimal.Decimal
	TotalNet       decimal.Decimal
	Reps           []RepSummary
}
