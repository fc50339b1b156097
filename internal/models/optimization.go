package models

import (
	"encoding/json"
	"math"
)

// ActionCategory classifies an optimization action
type ActionCategory string

const (
	CategoryRevenue     ActionCategory = "revenue"
	CategoryExpense     ActionCategory = "expense"
	CategoryImprovement ActionCategory = "improvement"
	CategoryOperational ActionCategory = "operational"
)

// RiskLevel is a qualitative risk tag
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// OptimizationAction represents a discrete, costed change to a property or its operation
type OptimizationAction struct {
	Title        string         `json:"title" yaml:"title"`
	Category     ActionCategory `json:"category" yaml:"category"`
	Cost         float64        `json:"cost" yaml:"cost"`                   // one-time
	RentDelta    float64        `json:"rent_delta" yaml:"rent_delta"`       // monthly
	ExpenseDelta float64        `json:"expense_delta" yaml:"expense_delta"` // monthly, negative for savings
	Risk         RiskLevel      `json:"risk" yaml:"risk"`
}

// PlanStep represents an action selected into a plan with the state after it is applied
type PlanStep struct {
	Action           OptimizationAction `json:"action"`
	MarginalROI      ROI                `json:"marginal_roi"`
	CumulativeCost   float64            `json:"cumulative_cost"`
	ProjectedReturns ReturnMetrics      `json:"projected_returns"`
}

// SkippedAction represents a catalog entry the recommender did not select
type SkippedAction struct {
	Action OptimizationAction `json:"action"`
	Reason string             `json:"reason"`
}

// OptimizationPlan represents the ordered selection of actions toward a target return
type OptimizationPlan struct {
	Steps              []PlanStep      `json:"steps"`
	Skipped            []SkippedAction `json:"skipped,omitempty"`
	BaselineCashOnCash float64         `json:"baseline_cash_on_cash"`
	TargetCashOnCash   float64         `json:"target_cash_on_cash"`
	TotalCost          float64         `json:"total_cost"`
	FinalReturns       ReturnMetrics   `json:"final_returns"`
	TargetMet          bool            `json:"target_met"`
}

// ClientRequirement represents a client's investment constraints
type ClientRequirement struct {
	MaxOutOfPocket   float64 `json:"max_out_of_pocket" yaml:"max_out_of_pocket"`
	MaxPurchasePrice float64 `json:"max_purchase_price" yaml:"max_purchase_price"`
	MinCashOnCash    float64 `json:"min_cash_on_cash" yaml:"min_cash_on_cash"`
	Email            string  `json:"email,omitempty" yaml:"email"`
}

// ROI is a marginal return ratio. Free actions carry +Inf, which JSON cannot
// represent as a number, so it is encoded as the string "+Inf".
type ROI float64

// IsInf reports whether the ROI is unbounded
func (r ROI) IsInf() bool { return math.IsInf(float64(r), 1) }

func (r ROI) MarshalJSON() ([]byte, error) {
	if r.IsInf() {
		return []byte(`"+Inf"`), nil
	}
	return json.Marshal(float64(r))
}

func (r *ROI) UnmarshalJSON(data []byte) error {
	if string(data) == `"+Inf"` {
		*r = ROI(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = ROI(v)
	return nil
}
