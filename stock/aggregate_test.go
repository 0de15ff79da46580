package stock

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groups(stats []GroupStats) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Group
	}
	return out
}

func TestAggregateCount(t *testing.T) {
	table := Load(Seed{
		Symbol: []string{"A", "B", "C", "D", "E", "F"},
		Price:  []float64{1, 2, 3, 4, 5, 6},
		PE:     []float64{1, 1, 1, 1, 1, 1},
		Group:  []string{"Retail", "Tech", "Tech", "Auto", "Tech", "Finance"},
	})

	stats, err := table.AggregateByGroup(Count)
	require.NoError(t, err)

	assert.Equal(t, []GroupStats{
		{Group: "Retail", Price: 1, PE: 1, USD: 1},
		{Group: "Tech", Price: 3, PE: 3, USD: 3},
		{Group: "Auto", Price: 1, PE: 1, USD: 1},
		{Group: "Finance", Price: 1, PE: 1, USD: 1},
	}, stats)

	total := 0.0
	for _, s := range stats {
		total += s.Price
	}
	assert.Equal(t, float64(table.Len()), total)
}

func TestAggregateFunctions(t *testing.T) {
	cases := []struct {
		function string
		price    float64
		pe       float64
	}{
		{Sum, 1422.4, 154.4},
		{Mean, 284.48, 30.88},
		{Min, 140.8, 22.3},
		{Max, 450.2, 45.8},
	}

	for _, tc := range cases {
		t.Run(tc.function, func(t *testing.T) {
			stats, err := Load(DefaultSeed()).AggregateByGroup(tc.function)
			require.NoError(t, err)
			require.Equal(t, []string{"Tech", "Retail", "Auto", "Finance"}, groups(stats))

			tech := stats[0]
			assert.InDelta(t, tc.price, tech.Price, 1e-9)
			assert.InDelta(t, tc.pe, tech.PE, 1e-9)
			assert.InDelta(t, tc.price/USDRate, tech.USD, 1e-9)

			// Single row groups reduce to the row itself
			assert.Equal(t, GroupStats{Group: "Finance", Price: 140.6, PE: 12.3, USD: 140.6 / USDRate}, stats[3])
		})
	}
}

func TestAggregateFollowsMutations(t *testing.T) {
	table := Load(DefaultSeed())
	_, err := table.DeleteBySymbol("AMZN")
	require.NoError(t, err)
	_, err = table.AddRecord("COST", "900", "50", "Retail")
	require.NoError(t, err)

	stats, err := table.AggregateByGroup(Max)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech", "Auto", "Finance", "Retail"}, groups(stats))
	assert.Equal(t, 900.0, stats[3].Price)
}

func TestAggregateEmptyTable(t *testing.T) {
	stats, err := Load(Seed{}).AggregateByGroup(Mean)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestAggregateUnsupportedFunction(t *testing.T) {
	for _, function := range []string{"median", "", "MEAN"} {
		_, err := Load(DefaultSeed()).AggregateByGroup(function)
		assert.Equal(t, ErrUnsupportedFunction, errors.Cause(err), function)
	}
}
