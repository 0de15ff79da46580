package stock

// USDRate is the fixed number of source currency units per dollar.
const USDRate = 23

// Columns is the fixed column set of every table.
var Columns = []string{"Symbol", "Price", "PE", "Group", "USD"}

// Record is one row of the table. USD is derived from Price and is only
// updated through setPrice.
type Record struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Price  float64 `json:"price" yaml:"price"`
	PE     float64 `json:"pe" yaml:"pe"`
	Group  string  `json:"group" yaml:"group"`
	USD    float64 `json:"usd" yaml:"-"`
}

func newRecord(symbol string, price, pe float64, group string) Record {
	r := Record{Symbol: symbol, PE: pe, Group: group}
	r.setPrice(price)
	return r
}

func (r *Record) setPrice(price float64) {
	r.Price = price
	r.USD = price / USDRate
}
