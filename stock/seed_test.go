package stock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSeedFileCSV(t *testing.T) {
	path := writeSeedFile(t, "stocks.csv", `Symbol,Price,PE,Group
AAPL,180.5,28.5,Tech
AMZN, 130.5, 40.2,Retail`)

	seed, err := ReadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, Seed{
		Symbol: []string{"AAPL", "AMZN"},
		Price:  []float64{180.5, 130.5},
		PE:     []float64{28.5, 40.2},
		Group:  []string{"Tech", "Retail"},
	}, seed)

	table := Load(seed)
	assert.Equal(t, 2, table.Len())
	assertUSD(t, table.Snapshot())
}

func TestReadSeedFileCSVWithoutHeader(t *testing.T) {
	path := writeSeedFile(t, "stocks.csv", "JPM,140.6,12.3,Finance\n")

	seed, err := ReadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"JPM"}, seed.Symbol)
}

func TestReadSeedFileCSVInvalidNumber(t *testing.T) {
	path := writeSeedFile(t, "stocks.csv", "Symbol,Price,PE,Group\nAAPL,lots,28.5,Tech\n")

	_, err := ReadSeedFile(path)
	assert.Equal(t, ErrInvalidNumber, errors.Cause(err))
}

func TestReadSeedFileYAML(t *testing.T) {
	path := writeSeedFile(t, "stocks.yaml", `
- symbol: TSLA
  price: 250.3
  pe: 60.5
  group: Auto
- symbol: JPM
  price: 140.6
  pe: 12.3
  group: Finance
`)

	seed, err := ReadSeedFile(path)
	require.NoError(t, err)

	records := Load(seed).Snapshot()
	require.Len(t, records, 2)
	assert.Equal(t, "TSLA", records[0].Symbol)
	assert.Equal(t, 12.3, records[1].PE)
	assertUSD(t, records)
}

func TestReadSeedFileYAMLRejectsUSD(t *testing.T) {
	path := writeSeedFile(t, "stocks.yml", "- {symbol: TSLA, price: 250.3, pe: 60.5, group: Auto, usd: 1}\n")

	_, err := ReadSeedFile(path)
	assert.Error(t, err)
}

func TestReadSeedFileErrors(t *testing.T) {
	_, err := ReadSeedFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = ReadSeedFile("stocks.json")
	assert.Error(t, err)
}

func TestLoadSeedWithMissingGroup(t *testing.T) {
	path := writeSeedFile(t, "stocks.yaml", "- {symbol: TSLA, price: 250.3, pe: 60.5}\n")

	seed, err := ReadSeedFile(path)
	require.NoError(t, err)

	assert.Equal(t, ErrInvalidInput, errors.Cause(seed.Validate()))
	assert.Equal(t, 0, Load(seed).Len())
}
