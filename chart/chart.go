// Package chart computes the series behind the price bar chart and the group
// distribution pie chart. Drawing them is left to the client.
package chart

import (
	"fmt"
	"sort"

	"github.com/martijnjanssen/stocktable/stock"
	"github.com/shopspring/decimal"
)

// Palette is cycled through when assigning colours to bars and slices.
var Palette = []string{"#3498db", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c", "#34495e", "#d35400"}

// Explode is the offset of the first pie slice.
const Explode = 0.1

type Bar struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Label  string  `json:"label"`
	Color  string  `json:"color"`
}

type Slice struct {
	Group   string  `json:"group"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Explode float64 `json:"explode"`
}

func color(i int) string {
	return Palette[i%len(Palette)]
}

// Bars returns one bar per record, in table order.
func Bars(records []stock.Record) []Bar {
	bars := make([]Bar, 0, len(records))
	for i, r := range records {
		bars = append(bars, Bar{
			Symbol: r.Symbol,
			Price:  r.Price,
			Label:  fmt.Sprintf("%.1f", r.Price),
			Color:  color(i),
		})
	}
	return bars
}

// Pie returns the number of records per group, largest first. Groups with
// the same count keep the order in which they first appear.
func Pie(records []stock.Record) []Slice {
	index := map[string]int{}
	slices := []Slice{}
	for _, r := range records {
		i, ok := index[r.Group]
		if !ok {
			i = len(slices)
			index[r.Group] = i
			slices = append(slices, Slice{Group: r.Group})
		}
		slices[i].Count++
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Count > slices[j].Count
	})

	total := decimal.NewFromInt(int64(len(records)))
	hundred := decimal.NewFromInt(100)
	for i := range slices {
		share := decimal.NewFromInt(int64(slices[i].Count)).Mul(hundred).Div(total).Round(1)
		slices[i].Percent, _ = share.Float64()
		slices[i].Label = share.StringFixed(1) + "%"
		slices[i].Color = color(i)
		if i == 0 {
			slices[i].Explode = Explode
		}
	}

	return slices
}
