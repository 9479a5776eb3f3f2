package eventmodels

type StrategyType string

const (
	StrategyTypeCoveredCalls         StrategyType = "covered-calls"
	StrategyTypeCashSecuredPut       StrategyType = "cash-secured-put"
	StrategyTypeLeap                 StrategyType = "leap"
	StrategyTypeBullPutCreditSpread  StrategyType = "bull-put-credit-spread"
	StrategyTypeBearCallCreditSpread StrategyType = "bear-call-credit-spread"
	StrategyTypeUnknown              StrategyType = "unknown"
)

func (s StrategyType) IsSpread() bool {
	return s == StrategyTypeBullPutCreditSpread || s == StrategyTypeBearCallCreditSpread
}

func NewCreditSpreadStrategyType(optionType OptionType) StrategyType {
	if optionType == OptionTypePut {
		return StrategyTypeBullPutCreditSpread
	}

	return StrategyTypeBearCallCreditSpread
}
