package stock

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Seed is the columnar input a table is loaded from. All columns must have
// the same length.
type Seed struct {
	Symbol []string
	Price  []float64
	PE     []float64
	Group  []string
}

// DefaultSeed returns the dataset the application starts with.
func DefaultSeed() Seed {
	return Seed{
		Symbol: []string{"AAPL", "MSFT", "GOOGL", "AMZN", "META", "TSLA", "NVDA", "JPM"},
		Price:  []float64{180.5, 350.2, 140.8, 130.5, 300.7, 250.3, 450.2, 140.6},
		PE:     []float64{28.5, 32.1, 25.7, 40.2, 22.3, 60.5, 45.8, 12.3},
		Group:  []string{"Tech", "Tech", "Tech", "Retail", "Tech", "Auto", "Tech", "Finance"},
	}
}

// Validate reports why the seed cannot be loaded, if it cannot.
func (s Seed) Validate() error {
	n := len(s.Symbol)
	if len(s.Price) != n || len(s.PE) != n || len(s.Group) != n {
		return errors.Errorf("column lengths differ: symbol=%d price=%d pe=%d group=%d",
			n, len(s.Price), len(s.PE), len(s.Group))
	}

	for i := 0; i < n; i++ {
		if strings.TrimSpace(s.Symbol[i]) == "" || strings.TrimSpace(s.Group[i]) == "" {
			return errors.Wrapf(ErrInvalidInput, "row %d", i)
		}
		if !finite(s.Price[i]) || !finite(s.PE[i]) {
			return errors.Wrapf(ErrInvalidNumber, "row %d", i)
		}
	}

	return nil
}

// Load builds a table from seed. A malformed seed yields an empty table.
func Load(seed Seed) *Table {
	if err := seed.Validate(); err != nil {
		logrus.WithError(err).Error("unable to load seed data, starting with an empty table")
		return &Table{}
	}

	t := &Table{records: make([]Record, 0, len(seed.Symbol))}
	for i := range seed.Symbol {
		t.records = append(t.records, newRecord(
			strings.TrimSpace(seed.Symbol[i]),
			seed.Price[i],
			seed.PE[i],
			strings.TrimSpace(seed.Group[i]),
		))
	}

	logrus.WithField("rows", len(t.records)).Info("Loaded seed data")
	return t
}

// ReadSeedFile reads a seed from a .csv or .yaml file.
func ReadSeedFile(path string) (Seed, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSVSeed(path)
	case ".yaml", ".yml":
		return readYAMLSeed(path)
	}

	return Seed{}, errors.Errorf("unsupported seed file type %q", filepath.Ext(path))
}

func readCSVSeed(path string) (Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Seed{}, errors.Wrap(err, "unable to open seed file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return Seed{}, errors.Wrap(err, "unable to read seed file")
	}

	// Skip the header row if present
	if len(rows) > 0 && strings.EqualFold(rows[0][0], "symbol") {
		rows = rows[1:]
	}

	seed := Seed{}
	for i, row := range rows {
		if len(row) < 4 {
			return Seed{}, errors.Errorf("line %d: expected 4 columns, got %d", i+1, len(row))
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return Seed{}, errors.Wrapf(ErrInvalidNumber, "line %d: price %q", i+1, row[1])
		}
		pe, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return Seed{}, errors.Wrapf(ErrInvalidNumber, "line %d: pe %q", i+1, row[2])
		}

		seed.Symbol = append(seed.Symbol, row[0])
		seed.Price = append(seed.Price, price)
		seed.PE = append(seed.PE, pe)
		seed.Group = append(seed.Group, row[3])
	}

	return seed, nil
}

func readYAMLSeed(path string) (Seed, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, errors.Wrap(err, "unable to open seed file")
	}

	var rows []Record
	if err := yaml.UnmarshalStrict(file, &rows); err != nil {
		return Seed{}, errors.Wrap(err, "unable to parse seed file")
	}

	seed := Seed{}
	for _, r := range rows {
		seed.Symbol = append(seed.Symbol, r.Symbol)
		seed.Price = append(seed.Price, r.Price)
		seed.PE = append(seed.PE, r.PE)
		seed.Group = append(seed.Group, r.Group)
	}

	return seed, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
