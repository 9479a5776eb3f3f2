package eventmodels

type BrokerageAccount struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Number          string   `json:"number"`
	InstitutionName string   `json:"institutionName"`
	TotalBalance    *float64 `json:"totalBalance,omitempty"`
	Currency        string   `json:"currency,omitempty"`
}
