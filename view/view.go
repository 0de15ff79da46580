// Package view turns table snapshots into what a user sees: a grid of cells
// with background colours, and markdown tables for the terminal.
package view

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/martijnjanssen/stocktable/chart"
	"github.com/martijnjanssen/stocktable/stock"
	md "github.com/nao1215/markdown"
)

// Cell backgrounds.
const (
	LightBlue   = "#d9f2ff"
	LightOrange = "#fff0d9"
	LightGreen  = "#d9ffd9"
	LightPurple = "#f2d9ff"
	LightRed    = "#ffd9d9"
)

// Price thresholds for highlighting price cells.
const (
	HighPrice = 300
	LowPrice  = 150
)

var groupColors = map[string]string{
	"Tech":    LightBlue,
	"Retail":  LightOrange,
	"Auto":    LightGreen,
	"Finance": LightPurple,
}

type Cell struct {
	Text       string `json:"text"`
	Background string `json:"background,omitempty"`
}

type Grid struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// NewGrid lays out records as rows of cells in column order.
func NewGrid(records []stock.Record) Grid {
	g := Grid{
		Columns: stock.Columns,
		Rows:    make([][]Cell, 0, len(records)),
	}

	for _, r := range records {
		g.Rows = append(g.Rows, []Cell{
			{Text: r.Symbol},
			{Text: number(r.Price), Background: priceColor(r.Price)},
			{Text: number(r.PE)},
			{Text: r.Group, Background: groupColors[r.Group]},
			{Text: number(r.USD)},
		})
	}

	return g
}

func priceColor(price float64) string {
	switch {
	case price > HighPrice:
		return LightGreen
	case price < LowPrice:
		return LightRed
	}
	return ""
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// cell escapes pipes so free text such as symbols and groups stays inside
// its column.
func cell(text string) string {
	return strings.ReplaceAll(text, "|", `\|`)
}

// Markdown renders the grid as a markdown table. Colours are dropped.
func Markdown(g Grid) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: g.Columns,
		Rows:   [][]string{},
	}
	for _, row := range g.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = cell(c.Text)
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// StatsMarkdown renders an aggregation result under a heading naming the
// function.
func StatsMarkdown(function string, stats []stock.GroupStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Results of %s by Group", function))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Group", "Price", "PE", "USD"},
		Rows:   [][]string{},
	}
	for _, s := range stats {
		table.Rows = append(table.Rows, []string{
			cell(s.Group),
			number(s.Price),
			number(s.PE),
			number(s.USD),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ChartsMarkdown renders the bar and pie series as two tables.
func ChartsMarkdown(bars []chart.Bar, slices []chart.Slice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Price by Symbol")
	barTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Symbol", "Price"},
		Rows:      [][]string{},
	}
	for _, b := range bars {
		barTable.Rows = append(barTable.Rows, []string{cell(b.Symbol), b.Label})
	}
	doc.Table(barTable)

	doc.H2("Distribution by Group")
	pieTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Group", "Count", "Share"},
		Rows:      [][]string{},
	}
	for _, s := range slices {
		pieTable.Rows = append(pieTable.Rows, []string{cell(s.Group), strconv.Itoa(s.Count), s.Label})
	}
	doc.Table(pieTable)

	return doc.String()
}

// Render formats markdown for the terminal with the named glamour style.
func Render(markdown string, style string) (string, error) {
	return glamour.Render(markdown, style)
}
