package sales

import (
	"sort"
	"strings"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

// Aggregate filters transactions to the given window and rolls them up by
// representative and by team. It is pure: identical inputs produce
// identical summaries, and nothing is mutated incrementally.
//
// Representative grouping keys on email, case-insensitively; the first row
// seen for an email fixes the summary's name and team even if later rows
// disagree (hand-edited sheets do disagree). Team totals are computed over
// every in-window transaction carrying the team value, then the matching
// rep summaries are attached by team equality.
//
// Reps sort by total commission descending, teams by total net descending;
// both sorts are stable so ties keep first-appearance order.
func Aggregate(transactions []entity.SaleTransaction, window string) ([]entity.RepSummary, []entity.TeamSummary) {
	var inWin []entity.SaleTransaction
	for _, tx := range transactions {
		if inWindow(tx, window) {
			inWin = append(inWin, tx)
		}
	}

	reps := aggregateReps(inWin)
	teams := aggregateTeams(inWin, reps)
	return reps, teams
}

func aggregateReps(transactions []entity.SaleTransaction) []entity.RepSummary {
	index := make(map[string]int)
	var reps []entity.RepSummary

	for _, tx := range transactions {
		key := strings.ToLower(tx.RepEmail)
		i, ok := index[key]
		if !ok {
			i = len(reps)
			index[key] = i
			reps = append(reps, entity.RepSummary{
				RepName:  tx.RepName,
				RepEmail: tx.RepEmail,
				Team:     tx.Team,
			})
		}
		reps[i].TotalCommission = reps[i].TotalCommission.Add(tx.Commission)
		reps[i].Transactions = append(reps[i].Transactions, tx)
	}

	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].TotalCommission.GreaterThan(reps[j].TotalCommission)
	})
	return reps
}

func aggregateTeams(transactions []entity.SaleTransaction, reps []entity.RepSummary) []entity.TeamSummary {
	index := make(map[string]int)
	var teams []entity.TeamSummary

	for _, tx := range transactions {
		i, ok := index[tx.Team]
		if !ok {
			i = len(teams)
			index[tx.Team] = i
			teams = append(teams, entity.TeamSummary{Team: tx.Team})
		}
		teams[i].TotalCollected = teams[i].TotalCollected.Add(tx.Collected)
		teams[i].TotalNet = teams[i].TotalNet.Add(tx.Net)
	}

	for i := range teams {
		for _, rep := range reps {
			if rep.Team == teams[i].Team {
				teams[i].Reps = append(teams[i].Reps, rep)
			}
		}
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TotalNet.GreaterThan(teams[j].TotalNet)
	})
	return teams
}
