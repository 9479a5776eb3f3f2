package eventmodels

type RankedCandidate struct {
	OptionChainContract
	DaysToExpiration                   *int     `json:"daysToExpiration,omitempty" csv:"days_to_expiration"`
	ExpectedReturnPercentage           *float64 `json:"expectedReturnPercentage,omitempty" csv:"expected_return_percentage"`
	ExpectedAnnualizedReturnPercentage *float64 `json:"expectedAnnualizedReturnPercentage,omitempty" csv:"expected_annualized_return_percentage"`
}
