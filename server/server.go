package server

import (
	"context"
	"fmt"
	"time"

	"github.com/martijnjanssen/stocktable/stock"
	"github.com/martijnjanssen/stocktable/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/valyala/fasthttp"
)

// LoadTable builds the table from the configured seed file, or from the
// built in dataset when none is configured. An unreadable seed file yields
// an empty table.
func LoadTable() *stock.Table {
	path := viper.GetString("seed.file")
	if path == "" {
		return stock.Load(stock.DefaultSeed())
	}

	seed, err := stock.ReadSeedFile(path)
	if err != nil {
		logrus.WithError(err).WithField("file", path).Error("unable to read seed file, starting with an empty table")
		return stock.Load(stock.Seed{})
	}

	return stock.Load(seed)
}

// NewServer returns a server for the session
func NewServer(session *stock.Session) *fasthttp.Server {
	return &fasthttp.Server{
		Name:        "stocktable",
		IdleTimeout: 10 * time.Second,
		Handler:     Handler(session),
	}
}

// Start loads the table, connects the event broker and starts listening to
// incoming requests
func Start() {
	conn := util.Connect(context.Background(), viper.GetString("broker.url"), viper.GetInt("broker.port"))
	defer conn.Close()

	var pub stock.Publisher
	if p := conn.Publisher(); p != nil {
		pub = p
	}
	session := stock.NewSession(LoadTable(), pub)

	logrus.WithField("port", viper.GetInt("port")).Info("Stocktable started, awaiting requests...")
	err := NewServer(session).ListenAndServe(fmt.Sprintf(":%d", viper.GetInt("port")))
	if err != nil {
		logrus.WithError(err).Fatal("error while listening")
	}
}
