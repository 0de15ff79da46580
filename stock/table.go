package stock

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Table is an ordered collection of records.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves, see Session.
type Table struct {
	records []Record
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Snapshot returns a copy of the rows in their current order.
func (t *Table) Snapshot() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// SearchAndHalvePrice halves the price of every record with the given symbol
// and returns how many were updated.
func (t *Table) SearchAndHalvePrice(symbol string) (int, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return 0, errors.Wrap(ErrInvalidInput, "symbol is required")
	}

	updated := 0
	for i := range t.records {
		if t.records[i].Symbol == symbol {
			t.records[i].setPrice(t.records[i].Price / 2)
			updated++
		}
	}

	if updated == 0 {
		return 0, errors.Wrapf(ErrNotFound, "symbol %s", symbol)
	}

	return updated, nil
}

// AddRecord parses and appends a new record as the last row.
func (t *Table) AddRecord(symbol, priceText, peText, group string) (Record, error) {
	symbol = strings.TrimSpace(symbol)
	priceText = strings.TrimSpace(priceText)
	peText = strings.TrimSpace(peText)
	group = strings.TrimSpace(group)

	if symbol == "" || priceText == "" || peText == "" || group == "" {
		return Record{}, errors.Wrap(ErrInvalidInput, "all fields are required")
	}

	price, err := parseNumber(priceText)
	if err != nil {
		return Record{}, errors.Wrap(err, "price")
	}
	pe, err := parseNumber(peText)
	if err != nil {
		return Record{}, errors.Wrap(err, "pe")
	}

	r := newRecord(symbol, price, pe, group)
	t.records = append(t.records, r)

	return r, nil
}

// DeleteBySymbol removes every record with the given symbol and returns how
// many were removed. The table is left untouched when nothing matches.
func (t *Table) DeleteBySymbol(symbol string) (int, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return 0, errors.Wrap(ErrInvalidInput, "symbol is required")
	}

	kept := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		if r.Symbol != symbol {
			kept = append(kept, r)
		}
	}

	deleted := len(t.records) - len(kept)
	if deleted == 0 {
		return 0, errors.Wrapf(ErrNotFound, "symbol %s", symbol)
	}

	t.records = kept
	return deleted, nil
}

// SortByPriceAscending reorders the rows by price, keeping the relative
// order of equal prices.
func (t *Table) SortByPriceAscending() {
	sort.SliceStable(t.records, func(i, j int) bool {
		return t.records[i].Price < t.records[j].Price
	})
}

func parseNumber(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || !finite(f) {
		return 0, errors.Wrapf(ErrInvalidNumber, "%q", text)
	}
	return f, nil
}
