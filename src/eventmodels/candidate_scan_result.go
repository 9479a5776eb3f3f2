package eventmodels

import "time"

type ScanParams struct {
	OptionType          OptionType
	MaxDaysToExpiration int
	Thresholds          CandidateThresholds
	Now                 time.Time
}

type CandidateSummary struct {
	Count                  int     `json:"count"`
	MeanExpectedReturn     float64 `json:"meanExpectedReturnPercentage"`
	MedianExpectedReturn   float64 `json:"medianExpectedReturnPercentage"`
	MaxExpectedReturn      float64 `json:"maxExpectedReturnPercentage"`
	MeanAnnualizedReturn   float64 `json:"meanAnnualizedReturnPercentage"`
	StdDevAnnualizedReturn float64 `json:"stdDevAnnualizedReturnPercentage"`
}

type CandidateScanResult struct {
	Candidates []RankedCandidate `json:"candidates"`
	Failed     []StockSymbol     `json:"failed,omitempty"`
	Summary    CandidateSummary  `json:"summary"`
}
