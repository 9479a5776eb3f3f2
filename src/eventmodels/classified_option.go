package eventmodels

type ClassifiedOption struct {
	OptionPosition
	StrategyType StrategyType `json:"strategyType" csv:"strategy_type"`
	SpreadID     *string      `json:"spreadId,omitempty" csv:"spread_id"`
}

func (c *ClassifiedOption) GetSpreadID() string {
	if c.SpreadID == nil {
		return ""
	}

	return *c.SpreadID
}
