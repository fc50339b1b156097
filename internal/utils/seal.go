package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/Dan9191/underwriting-service/internal/models"
)

// GenerateHMAC generates a hex HMAC-SHA256 of data
func GenerateHMAC(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SealAnalysis computes the HMAC of an analysis with its Seal field cleared
func SealAnalysis(a models.Analysis, secret string) (string, error) {
	a.Seal = ""
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}
	return GenerateHMAC(data, secret), nil
}

// VerifySeal reports whether the analysis still matches its stored seal
func VerifySeal(a models.Analysis, secret string) (bool, error) {
	expected, err := SealAnalysis(a, secret)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(a.Seal)), nil
}
