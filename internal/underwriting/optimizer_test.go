package underwriting

import (
	"math"
	"testing"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineFor(t *testing.T, p models.Property, a models.FinancialAssumptions) (models.LoanTerms, models.ReturnMetrics) {
	t.Helper()
	loan, err := ComputeLoan(p.PurchasePrice, a)
	require.NoError(t, err)
	return loan, ComputeReturns(p, loan, ComputeExpenses(p, p.PurchasePrice, a), p.PurchasePrice, a)
}

func sampleCatalog() []models.OptimizationAction {
	return []models.OptimizationAction{
		{Title: "kitchen", Category: models.CategoryImprovement, Cost: 5000, RentDelta: 150, Risk: models.RiskMedium},
		{Title: "energy", Category: models.CategoryImprovement, Cost: 500, ExpenseDelta: -50, Risk: models.RiskLow},
		{Title: "raise rent", Category: models.CategoryRevenue, RentDelta: 100, Risk: models.RiskLow},
		{Title: "curb appeal", Category: models.CategoryImprovement, Cost: 2000, RentDelta: 100, Risk: models.RiskLow},
	}
}

func TestMarginalROI(t *testing.T) {
	assert.True(t, math.IsInf(MarginalROI(models.OptimizationAction{RentDelta: 10}), 1))
	assert.InDelta(t, 1.2, MarginalROI(models.OptimizationAction{Cost: 500, ExpenseDelta: -50}), 1e-9)
	assert.InDelta(t, 0.6, MarginalROI(models.OptimizationAction{Cost: 2000, RentDelta: 100}), 1e-9)
	assert.InDelta(t, 0.396, MarginalROI(models.OptimizationAction{Cost: 5000, RentDelta: 150, ExpenseDelta: -15}), 1e-9)
}

func TestRankActions_TotalOrder(t *testing.T) {
	catalog := []models.OptimizationAction{
		{Title: "a", Cost: 1000, RentDelta: 50},  // roi 0.6
		{Title: "b", Cost: 2000, RentDelta: 100}, // roi 0.6, more expensive
		{Title: "c", Cost: 1000, RentDelta: 50},  // duplicate of a, later in catalog
		{Title: "d", RentDelta: 1},               // free
		{Title: "e", Cost: 100, ExpenseDelta: 5}, // costs money every month
		{Title: "f", Cost: 500, RentDelta: 100},  // roi 2.4
	}

	ranked, skipped := rankActions(catalog)

	var titles []string
	for _, c := range ranked {
		titles = append(titles, c.action.Title)
	}
	assert.Equal(t, []string{"d", "f", "a", "c", "b"}, titles)
	require.Len(t, skipped, 1)
	assert.Equal(t, "e", skipped[0].Action.Title)
}

func TestRecommend_BaselineAlreadyMeetsTarget(t *testing.T) {
	p := cashFlowingProperty()
	a := noUtilities()
	loan, baseline := baselineFor(t, p, a)
	require.Greater(t, baseline.CashOnCash, 0.05)

	plan := Recommend(p, loan, baseline, sampleCatalog(), models.ClientRequirement{MinCashOnCash: 0.05}, a)

	assert.True(t, plan.TargetMet)
	assert.Empty(t, plan.Steps)
	assert.Zero(t, plan.TotalCost)
	assert.Equal(t, baseline, plan.FinalReturns)
}

func TestRecommend_StopsOnceTargetMet(t *testing.T) {
	p := cashFlowingProperty()
	a := noUtilities()
	loan, baseline := baselineFor(t, p, a)
	target := baseline.CashOnCash + 0.01

	plan := Recommend(p, loan, baseline, sampleCatalog(), models.ClientRequirement{MinCashOnCash: target}, a)

	require.True(t, plan.TargetMet)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "raise rent", plan.Steps[0].Action.Title)
	assert.True(t, plan.Steps[0].MarginalROI.IsInf())
	assert.GreaterOrEqual(t, plan.FinalReturns.CashOnCash, target)
	assert.Zero(t, plan.TotalCost)
}

func TestRecommend_ExhaustedCatalog(t *testing.T) {
	p := houstonProperty()
	a := DefaultAssumptions()
	loan, baseline := baselineFor(t, p, a)

	plan := Recommend(p, loan, baseline, sampleCatalog(), models.ClientRequirement{MinCashOnCash: 0.5}, a)

	assert.False(t, plan.TargetMet)
	require.Len(t, plan.Steps, 4)
	assert.Equal(t, 7500.0, plan.TotalCost)
	assert.Equal(t, plan.Steps[3].ProjectedReturns, plan.FinalReturns)

	for i := 1; i < len(plan.Steps); i++ {
		assert.GreaterOrEqual(t, float64(plan.Steps[i-1].MarginalROI), float64(plan.Steps[i].MarginalROI))
		assert.Greater(t, plan.Steps[i].CumulativeCost, plan.Steps[i-1].CumulativeCost)
	}
	for _, s := range plan.Steps {
		m := s.ProjectedReturns
		assert.Equal(t, m.CashOnCash+m.Appreciation+m.TaxSavings+m.PrincipalPaydown, m.Total)
	}
	// improvement costs are part of cash invested
	assert.InDelta(t, loan.CashInvested+7500, plan.FinalReturns.CashInvested, 1e-9)
	assert.Greater(t, plan.FinalReturns.CashOnCash, baseline.CashOnCash)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	p := cashFlowingProperty()
	a := noUtilities()
	loan, baseline := baselineFor(t, p, a)

	met := Recommend(p, loan, baseline, nil, models.ClientRequirement{MinCashOnCash: baseline.CashOnCash}, a)
	assert.True(t, met.TargetMet)
	assert.Empty(t, met.Steps)

	missed := Recommend(p, loan, baseline, []models.OptimizationAction{}, models.ClientRequirement{MinCashOnCash: 1}, a)
	assert.False(t, missed.TargetMet)
	assert.Empty(t, missed.Steps)
	assert.Equal(t, baseline, missed.FinalReturns)
}

func TestRecommend_DuplicatesAreIndependent(t *testing.T) {
	p := houstonProperty()
	a := DefaultAssumptions()
	loan, baseline := baselineFor(t, p, a)
	action := models.OptimizationAction{Title: "paint", Category: models.CategoryImprovement, Cost: 1000, RentDelta: 40}

	plan := Recommend(p, loan, baseline, []models.OptimizationAction{action, action}, models.ClientRequirement{MinCashOnCash: 1}, a)

	require.Len(t, plan.Steps, 2)
	assert.Equal(t, 2000.0, plan.TotalCost)
	assert.InDelta(t, 80, plan.FinalReturns.MonthlyRent-p.EstimatedRent, 1e-9)
}

func TestRecommend_OutOfPocketBudget(t *testing.T) {
	p := houstonProperty()
	a := DefaultAssumptions()
	loan, baseline := baselineFor(t, p, a)
	req := models.ClientRequirement{MinCashOnCash: 1, MaxOutOfPocket: loan.CashInvested + 2600}

	plan := Recommend(p, loan, baseline, sampleCatalog(), req, a)

	var selected []string
	for _, s := range plan.Steps {
		selected = append(selected, s.Action.Title)
	}
	assert.Equal(t, []string{"raise rent", "energy", "curb appeal"}, selected)
	require.Len(t, plan.Skipped, 1)
	assert.Equal(t, "kitchen", plan.Skipped[0].Action.Title)
	assert.LessOrEqual(t, loan.CashInvested+plan.TotalCost, req.MaxOutOfPocket)
}

func TestRecommend_FreeActionsIgnoreExhaustedBudget(t *testing.T) {
	p := houstonProperty()
	a := DefaultAssumptions()
	loan, baseline := baselineFor(t, p, a)
	req := models.ClientRequirement{MinCashOnCash: 1, MaxOutOfPocket: loan.CashInvested - 10000}

	plan := Recommend(p, loan, baseline, sampleCatalog(), req, a)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "raise rent", plan.Steps[0].Action.Title)
	assert.Zero(t, plan.TotalCost)
	require.Len(t, plan.Skipped, 3)
	for _, s := range plan.Skipped {
		assert.Equal(t, "exceeds out-of-pocket budget", s.Reason)
		assert.Greater(t, s.Action.Cost, 0.0)
	}
}
