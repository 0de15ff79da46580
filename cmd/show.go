package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/martijnjanssen/stocktable/chart"
	"github.com/martijnjanssen/stocktable/server"
	"github.com/martijnjanssen/stocktable/stock"
	"github.com/martijnjanssen/stocktable/view"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sortByPrice bool

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := server.LoadTable()
			if sortByPrice {
				table.SortByPriceAscending()
			}
			return render(view.Markdown(view.NewGrid(table.Snapshot())))
		},
	}

	statsCmd = &cobra.Command{
		Use:       "stats <" + strings.Join(stock.Functions, "|") + ">",
		Short:     "Print a per group aggregation of the numeric columns",
		Args:      cobra.ExactArgs(1),
		ValidArgs: stock.Functions,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := server.LoadTable().AggregateByGroup(args[0])
			if err != nil {
				return errors.Wrap(err, "unable to calculate statistics")
			}
			return render(view.StatsMarkdown(args[0], stats))
		},
	}

	chartsCmd = &cobra.Command{
		Use:   "charts",
		Short: "Print the price by symbol and distribution by group series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := server.LoadTable().Snapshot()
			return render(view.ChartsMarkdown(chart.Bars(records), chart.Pie(records)))
		},
	}
)

func init() {
	showCmd.Flags().BoolVar(&sortByPrice, "sort", false, "sort by price, ascending")
}

func render(markdown string) error {
	out, err := view.Render(markdown, viper.GetString("style"))
	if err != nil {
		logrus.WithError(err).Warn("unable to render markdown, printing it as is")
		out = markdown
	}

	_, err = fmt.Fprint(os.Stdout, out)
	return err
}
