package underwriting

import (
	"math"
	"sort"

	"github.com/Dan9191/underwriting-service/internal/models"
)

// MarginalROI returns the annual net benefit of an action per dollar of one-time cost.
// Free actions return +Inf.
func MarginalROI(action models.OptimizationAction) float64 {
	if action.Cost <= 0 {
		return math.Inf(1)
	}
	return annualBenefit(action) / action.Cost
}

func annualBenefit(action models.OptimizationAction) float64 {
	return (action.RentDelta - action.ExpenseDelta) * 12
}

type candidate struct {
	action models.OptimizationAction
	roi    float64
	index  int
}

// rankActions orders beneficial actions by descending ROI, then ascending cost,
// then catalog position. Actions without a recurring benefit are returned apart.
func rankActions(catalog []models.OptimizationAction) ([]candidate, []models.SkippedAction) {
	ranked := make([]candidate, 0, len(catalog))
	var skipped []models.SkippedAction
	for i, action := range catalog {
		if annualBenefit(action) <= 0 {
			skipped = append(skipped, models.SkippedAction{Action: action, Reason: "no recurring benefit"})
			continue
		}
		ranked = append(ranked, candidate{action: action, roi: MarginalROI(action), index: i})
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.roi != b.roi {
			return a.roi > b.roi
		}
		if a.action.Cost != b.action.Cost {
			return a.action.Cost < b.action.Cost
		}
		return a.index < b.index
	})
	return ranked, skipped
}

// Recommend greedily selects catalog actions in ROI order until the projected
// cash-on-cash return reaches the client's minimum. Each selection is validated
// by recomputing expenses and returns with the cumulative rent and expense
// deltas; one-time action costs count as additional cash invested.
// Running out of actions is not an error: the plan reports TargetMet=false.
func Recommend(p models.Property, loan models.LoanTerms, baseline models.ReturnMetrics,
	catalog []models.OptimizationAction, req models.ClientRequirement, a models.FinancialAssumptions) models.OptimizationPlan {
	plan := models.OptimizationPlan{
		Steps:              []models.PlanStep{},
		BaselineCashOnCash: baseline.CashOnCash,
		TargetCashOnCash:   req.MinCashOnCash,
		FinalReturns:       baseline,
		TargetMet:          meetsTarget(baseline, req),
	}
	if plan.TargetMet {
		return plan
	}

	ranked, skipped := rankActions(catalog)
	plan.Skipped = skipped

	var rentDelta, expenseDelta, cost float64
	for _, c := range ranked {
		// free actions add nothing to out-of-pocket spending
		if req.MaxOutOfPocket > 0 && c.action.Cost > 0 && loan.CashInvested+cost+c.action.Cost > req.MaxOutOfPocket {
			plan.Skipped = append(plan.Skipped, models.SkippedAction{Action: c.action, Reason: "exceeds out-of-pocket budget"})
			continue
		}
		rentDelta += c.action.RentDelta
		expenseDelta += c.action.ExpenseDelta
		cost += c.action.Cost

		projected := project(p, loan, a, rentDelta, expenseDelta, cost)
		plan.Steps = append(plan.Steps, models.PlanStep{
			Action:           c.action,
			MarginalROI:      models.ROI(c.roi),
			CumulativeCost:   cost,
			ProjectedReturns: projected,
		})
		plan.TotalCost = cost
		plan.FinalReturns = projected
		if meetsTarget(projected, req) {
			plan.TargetMet = true
			break
		}
	}
	return plan
}

// project recomputes returns for a property with cumulative action deltas applied
func project(p models.Property, loan models.LoanTerms, a models.FinancialAssumptions, rentDelta, expenseDelta, cost float64) models.ReturnMetrics {
	p.EstimatedRent += rentDelta
	expenses := ComputeExpenses(p, loan.PurchasePrice, a)
	expenses.Adjustments = expenseDelta
	return computeReturns(p.EstimatedRent, loan, expenses, loan.PurchasePrice, a, cost)
}

func meetsTarget(m models.ReturnMetrics, req models.ClientRequirement) bool {
	return !m.Undefined && m.CashOnCash >= req.MinCashOnCash
}
