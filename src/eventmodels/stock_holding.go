package eventmodels

type StockHolding struct {
	UnderlyingSymbol StockSymbol `json:"underlyingSymbol" csv:"underlying_symbol"`
	Units            float64     `json:"units" csv:"units"`
	Price            float64     `json:"price,omitempty" csv:"price"`
}
