// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/phoenix-field/backend/internal/application/usecase/sales"
	"github.com/phoenix-field/backend/internal/domain/entity"
)

// DashboardResponse represents the response for the sales dashboard.
type DashboardResponse struct {
	Window          string `json:"window"`
	AvailableMonths []string `json:"available_months"`
	Tier            string `json:"tier"`

	MyStats       *RepSummaryResponse   `json:"my_stats,omitempty"`
	MyTeam        *TeamSummaryResponse  `json:"my_team,omitempty"`
	Teams         []TeamSummaryResponse `json:"teams,omitempty"`
	TopPerformers []RepSummaryResponse  `json:"top_performers,omitempty"`
}

// MonthsResponse represents the response for the month navigation endpoint.
type MonthsResponse struct {
	Months        []string `json:"months"`
	DefaultWindow string   `json:"default_window"`
}

// RepSummaryResponse represents one representative's aggregated window.
type RepSummaryResponse struct {
	RepName         string                `json:"rep_name"`
	RepEmail        string                `json:"rep_email"`
	Team            string                `json:"team"`
	TotalCommission float64               `json:"total_commission"`
	Transactions    []TransactionResponse `json:"transactions"`
}

// TeamSummaryResponse represents one team's aggregated window.
type TeamSummaryResponse struct {
	Team           string               `json:"team"`
	TotalCollected float64              `json:"total_collected"`
	TotalNet       float64              `json:"total_net"`
	Reps           []RepSummaryResponse `json:"reps"`
}

// TransactionResponse represents a single sale row.
type TransactionResponse struct {
	Date        string  `json:"date"`
	Team        string  `json:"team"`
	RepName     string  `json:"rep_name"`
	Client      string  `json:"client"`
	SalePrice   float64 `json:"sale_price"`
	Collected   float64 `json:"collected"`
	MerchantFee float64 `json:"merchant_fee"`
	ExitCost    float64 `json:"exit_cost"`
	Net         float64 `json:"net"`
	Commission  float64 `json:"commission"`
	Percentage  string  `json:"percentage,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *sales.GetDashboardOutput) DashboardResponse {
	resp := DashboardResponse{
		Window:          output.Window,
		AvailableMonths: output.AvailableMonths,
		Tier:            string(output.View.Tier),
	}

	if output.View.MyRep != nil {
		rep := toRepSummaryResponse(*output.View.MyRep)
		resp.MyStats = &rep
	}
	if output.View.MyTeam != nil {
		team := toTeamSummaryResponse(*output.View.MyTeam)
		resp.MyTeam = &team
	}
	if len(output.View.Teams) > 0 {
		resp.Teams = make([]TeamSummaryResponse, len(output.View.Teams))
		for i, team := range output.View.Teams {
			resp.Teams[i] = toTeamSummaryResponse(team)
		}
	}
	if len(output.View.TopPerformers) > 0 {
		resp.TopPerformers = make([]RepSummaryResponse, len(output.View.TopPerformers))
		for i, rep := range output.View.TopPerformers {
			resp.TopPerformers[i] = toRepSummaryResponse(rep)
		}
	}

	return resp
}

func toRepSummaryResponse(rep entity.RepSummary) RepSummaryResponse {
	totalCommission, _ := rep.TotalCommission.Float64()
	transactions := make([]TransactionResponse, len(rep.Transactions))
	for i, tx := range rep.Transactions {
		transactions[i] = toTransactionResponse(tx)
	}
	return RepSummaryResponse{
		RepName:         rep.RepName,
		RepEmail:        rep.RepEmail,
		Team:            rep.Team,
		TotalCommission: totalCommission,
		Transactions:    transactions,
	}
}

func toTeamSummaryResponse(team entity.TeamSummary) TeamSummaryResponse {
	totalCollected, _ := team.TotalCollected.Float64()
	totalNet, _ := team.TotalNet.Float64()
	reps := make([]RepSummaryResponse, len(team.Reps))
	for i, rep := range team.Reps {
		reps[i] = toRepSummaryResponse(rep)
	}
	return TeamSummaryResponse{
		Team:           team.Team,
		TotalCollected: totalCollected,
		TotalNet:       totalNet,
		Reps:           reps,
	}
}

func toTransactionResponse(tx entity.SaleTransaction) TransactionResponse {
	salePrice, _ := tx.SalePrice.Float64()
	collected, _ := tx.Collected.Float64()
	merchantFee, _ := tx.MerchantFee.Float64()
	exitCost, _ := tx.ExitCost.Float64()
	net, _ := tx.Net.Float64()
	commission, _ := tx.Commission.Float64()
	return TransactionResponse{
		Date:        tx.RawDate,
		Team:        tx.Team,
		RepName:     tx.RepName,
		Client:      tx.Client,
		SalePrice:   salePrice,
		Collected:   collected,
		MerchantFee: merchantFee,
		ExitCost:    exitCost,
		Net:         net,
		Commission:  commission,
		Percentage:  tx.Percentage,
		Notes:       tx.Notes,
	}
}
