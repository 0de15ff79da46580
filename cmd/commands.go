package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/martijnjanssen/stocktable/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "stocktable",
		Short: "stocktable serves an editable table of stock records",
		Long: `An in-memory table of stock records that can be searched, edited,
                sorted, aggregated and charted over HTTP or from the terminal.`,
		Run: func(cmd *cobra.Command, args []string) {
			server.Start()
		},
	}
)

// Initialize commands
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stocktable.yaml)")
	rootCmd.PersistentFlags().String("seed", "", "seed file (.csv or .yaml) to load instead of the built in data")
	rootCmd.Flags().IntP("port", "p", 8000, "port to listen on")

	rootCmd.AddCommand(showCmd, statsCmd, chartsCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("stocktable")
	}

	// Bind flags to config values
	err := viper.BindPFlag("seed.file", rootCmd.PersistentFlags().Lookup("seed"))
	if err != nil {
		logrus.WithError(err).Fatal("unable to bind seed flag to config value")
	}
	err = viper.BindPFlag("port", rootCmd.Flags().Lookup("port"))
	if err != nil {
		logrus.WithError(err).Fatal("unable to bind port flag to config value")
	}

	// Default config values
	viper.SetDefault("port", 8000)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("broker.url", "")
	viper.SetDefault("broker.port", 6379)
	viper.SetDefault("style", "auto")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configureLogging()

	if err := viper.ReadInConfig(); err == nil {
		configureLogging()
		logrus.WithField("file", viper.ConfigFileUsed()).Info("Loaded config")
	}
}

func configureLogging() {
	level, err := logrus.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		logrus.WithError(err).Warn("invalid log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if viper.GetString("log.format") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
