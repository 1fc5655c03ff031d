package sales

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phoenix-field/backend/internal/domain/entity"
)

func fixtureAggregates(t *testing.T) ([]entity.RepSummary, []entity.TeamSummary) {
	t.Helper()
	day := func(d int) *time.Time {
		v := time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	transactions := []entity.SaleTransaction{
		{Date: day(2), Team: "KYT1", RepName: "Casey Lin", RepEmail: "casey@phoenix.test",
			Commission: decimal.RequireFromString("300"), Net: decimal.RequireFromString("900")},
		{Date: day(3), Team: "KYT1", RepName: "Riley Poe", RepEmail: "riley@phoenix.test",
			Commission: decimal.RequireFromString("200"), Net: decimal.RequireFromString("500")},
		{Date: day(4), Team: "KYT2", RepName: "Drew Ash", RepEmail: "drew@phoenix.test",
			Commission: decimal.RequireFromString("100"), Net: decimal.RequireFromString("300")},
	}
	return Aggregate(transactions, WindowAll)
}

func actor(email, team string, tier entity.Tier) entity.ActorProfile {
	return entity.ActorProfile{Email: email, Team: team, Tier: tier}
}

func TestVisible_Representative(t *testing.T) {
	reps, teams := fixtureAggregates(t)

	view := Visible(actor("riley@phoenix.test", "KYT1", entity.TierRepresentative), reps, teams, 10)

	if view.MyRep == nil {
		t.Fatal("rep should see own summary")
	}
	if view.MyRep.RepEmail != "riley@phoenix.test" {
		t.Errorf("MyRep = %q", view.MyRep.RepEmail)
	}
	if view.MyTeam != nil || view.Teams != nil || view.TopPerformers != nil {
		t.Error("rep view must not carry team or global sections")
	}
}

func TestVisible_RepresentativeWithoutSales(t *testing.T) {
	reps, teams := fixtureAggregates(t)

	view := Visible(actor("new@phoenix.test", "KYT1", entity.TierRepresentative), reps, teams, 10)

	if view.MyRep != nil {
		t.Error("rep with no in-window transactions gets an empty view, not someone else's")
	}
}

func TestVisible_TeamLead(t *testing.T) {
	reps, teams := fixtureAggregates(t)

	view := Visible(actor("lead@phoenix.test", "KYT1", entity.TierTeamLead), reps, teams, 10)

	if view.MyTeam == nil {
		t.Fatal("team lead should see own team")
	}
	if view.MyTeam.Team != "KYT1" || len(view.MyTeam.Reps) != 2 {
		t.Errorf("MyTeam = %+v", view.MyTeam)
	}
	if view.MyRep != nil || view.Teams != nil {
		t.Error("team lead view must not carry other sections")
	}
}

func TestVisible_Executive(t *testing.T) {
	reps, teams := fixtureAggregates(t)

	view := Visible(actor("owner@phoenix.test", "", entity.TierExecutive), reps, teams, 2)

	if len(view.Teams) != 2 {
		t.Errorf("executive should see all teams, got %d", len(view.Teams))
	}
	if len(view.TopPerformers) != 2 {
		t.Fatalf("top performers = %d, want capped at 2", len(view.TopPerformers))
	}
	if view.TopPerformers[0].RepEmail != "casey@phoenix.test" {
		t.Errorf("ranking order wrong: %q first", view.TopPerformers[0].RepEmail)
	}

	// topN larger than the rep count is clamped, not an error.
	view = Visible(actor("owner@phoenix.test", "", entity.TierExecutive), reps, teams, 50)
	if len(view.TopPerformers) != 3 {
		t.Errorf("clamped top performers = %d, want 3", len(view.TopPerformers))
	}
}
