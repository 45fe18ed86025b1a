package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/lox/cosmicweather/internal/metrics"
)

type Globals struct {
	DB          string `help:"Path to SQLite database." default:"data/cosmicweather.db" env:"COSMICWEATHER_DB" type:"path"`
	MetricsFile string `help:"Write Prometheus metrics to this file before exiting." env:"COSMICWEATHER_METRICS_FILE" type:"path"`
}

type CLI struct {
	Globals

	Reading ReadingCmd `cmd:"" help:"Generate a horoscope for two signs."`
	Signs   SignsCmd   `cmd:"" help:"List the zodiac signs."`
	Seed    SeedCmd    `cmd:"" help:"Seed weather scenarios into the database."`
	Weather WeatherCmd `cmd:"" help:"Inspect weather scenarios."`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cosmicweather"),
		kong.Description("Pair two zodiac signs with the weather and read what the sky says."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	if cli.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cli.MetricsFile); merr != nil {
			log.Printf("metrics: %v", merr)
		}
	}
	ctx.FatalIfErrorf(err)
}
