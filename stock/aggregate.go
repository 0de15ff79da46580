package stock

import (
	"math"

	"github.com/pkg/errors"
)

// Aggregation function names accepted by AggregateByGroup.
const (
	Mean  = "mean"
	Sum   = "sum"
	Count = "count"
	Min   = "min"
	Max   = "max"
)

// Functions lists the supported aggregation functions.
var Functions = []string{Mean, Sum, Count, Min, Max}

// GroupStats holds one aggregation result per numeric column for a group.
type GroupStats struct {
	Group string  `json:"group"`
	Price float64 `json:"price"`
	PE    float64 `json:"pe"`
	USD   float64 `json:"usd"`
}

type reducer func(acc, v float64, n int) float64

var reducers = map[string]reducer{
	Sum:   func(acc, v float64, _ int) float64 { return acc + v },
	Mean:  func(acc, v float64, _ int) float64 { return acc + v },
	Count: func(acc, _ float64, _ int) float64 { return acc + 1 },
	Min: func(acc, v float64, n int) float64 {
		if n == 0 {
			return v
		}
		return math.Min(acc, v)
	},
	Max: func(acc, v float64, n int) float64 {
		if n == 0 {
			return v
		}
		return math.Max(acc, v)
	},
}

// AggregateByGroup partitions the rows by group and reduces every numeric
// column with the named function. Groups appear in the order they are first
// seen in the table.
func (t *Table) AggregateByGroup(function string) ([]GroupStats, error) {
	reduce, ok := reducers[function]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFunction, "%q", function)
	}

	index := map[string]int{}
	counts := []int{}
	stats := []GroupStats{}

	for _, r := range t.records {
		i, seen := index[r.Group]
		if !seen {
			i = len(stats)
			index[r.Group] = i
			stats = append(stats, GroupStats{Group: r.Group})
			counts = append(counts, 0)
		}

		s := &stats[i]
		n := counts[i]
		s.Price = reduce(s.Price, r.Price, n)
		s.PE = reduce(s.PE, r.PE, n)
		s.USD = reduce(s.USD, r.USD, n)
		counts[i]++
	}

	if function == Mean {
		for i := range stats {
			n := float64(counts[i])
			stats[i].Price /= n
			stats[i].PE /= n
			stats[i].USD /= n
		}
	}

	return stats, nil
}
