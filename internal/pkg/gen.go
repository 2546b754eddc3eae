package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxReportID = 99999999

// GenerateReportID - generates a unique identifier for a score report.
func GenerateReportID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxReportID))
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return n.String(), nil
}
