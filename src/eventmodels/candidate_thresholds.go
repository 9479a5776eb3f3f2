package eventmodels

import "fmt"

const (
	DefaultMinExpectedReturnPercentage = 0.6
	DefaultMaxExpectedReturnPercentage = 1.5
)

// CandidateThresholds bounds the premium-to-strike percentage of a good candidate, inclusive.
type CandidateThresholds struct {
	MinExpectedReturnPercentage float64 `yaml:"minExpectedReturnPercentage" json:"minExpectedReturnPercentage"`
	MaxExpectedReturnPercentage float64 `yaml:"maxExpectedReturnPercentage" json:"maxExpectedReturnPercentage"`
}

func (t CandidateThresholds) Validate() error {
	if t.MinExpectedReturnPercentage < 0 {
		return fmt.Errorf("CandidateThresholds: Validate: min expected return must be non-negative")
	}

	if t.MaxExpectedReturnPercentage < t.MinExpectedReturnPercentage {
		return fmt.Errorf("CandidateThresholds: Validate: max expected return %.2f is below min %.2f", t.MaxExpectedReturnPercentage, t.MinExpectedReturnPercentage)
	}

	return nil
}

func (t CandidateThresholds) Contains(pct float64) bool {
	return pct >= t.MinExpectedReturnPercentage && pct <= t.MaxExpectedReturnPercentage
}

func DefaultCandidateThresholds() CandidateThresholds {
	return CandidateThresholds{
		MinExpectedReturnPercentage: DefaultMinExpectedReturnPercentage,
		MaxExpectedReturnPercentage: DefaultMaxExpectedReturnPercentage,
	}
}
