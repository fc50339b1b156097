package utils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/Dan9191/underwriting-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() models.Analysis {
	return models.Analysis{
		ID:         "4f9a3c1e-6b2d-4a8e-9f10-2c3d4e5f6a7b",
		PropertyID: "oak-ridge",
		Returns:    models.ReturnMetrics{CashOnCash: 0.0712, Total: 0.2431},
		Plan: models.OptimizationPlan{Steps: []models.PlanStep{
			{Action: models.OptimizationAction{Title: "Raise rent"}, MarginalROI: models.ROI(math.Inf(1))},
		}},
		CreatedAt: time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC),
	}
}

func TestSealAnalysis_RoundTrip(t *testing.T) {
	a := sampleAnalysis()
	seal, err := SealAnalysis(a, "secret")
	require.NoError(t, err)
	a.Seal = seal

	// what the repository does: store as JSON, read back
	data, err := json.Marshal(a)
	require.NoError(t, err)
	var stored models.Analysis
	require.NoError(t, json.Unmarshal(data, &stored))

	ok, err := VerifySeal(stored, "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifySeal_DetectsTampering(t *testing.T) {
	a := sampleAnalysis()
	seal, err := SealAnalysis(a, "secret")
	require.NoError(t, err)
	a.Seal = seal

	a.Returns.CashOnCash = 0.15
	ok, err := VerifySeal(a, "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	a.Returns.CashOnCash = 0.0712
	ok, err = VerifySeal(a, "other-secret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateHMAC_Deterministic(t *testing.T) {
	assert.Equal(t, GenerateHMAC([]byte("x"), "k"), GenerateHMAC([]byte("x"), "k"))
	assert.Len(t, GenerateHMAC([]byte("x"), "k"), 64)
}
