package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/lox/cosmicweather/internal/horoscope"
	"github.com/lox/cosmicweather/internal/imagegen"
	"github.com/lox/cosmicweather/internal/metrics"
	"github.com/lox/cosmicweather/internal/models"
	"github.com/lox/cosmicweather/internal/reading"
	"github.com/lox/cosmicweather/internal/render"
	"github.com/lox/cosmicweather/internal/scenarios"
	"github.com/lox/cosmicweather/internal/store"
	"github.com/lox/cosmicweather/internal/zodiac"
)

// openStore opens and migrates the database, seeding the default scenarios
// into an empty table.
func (g *Globals) openStore() (*store.Store, func(), error) {
	if dir := filepath.Dir(g.DB); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := store.Open(g.DB)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { db.Close() }

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	defaults, err := scenarios.Default()
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	seeded, err := st.EnsureSeeded(defaults)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	if seeded {
		metrics.ScenariosSeeded.Add(float64(len(defaults)))
	}
	return st, closeFn, nil
}

type ReadingCmd struct {
	You     zodiac.Sign `arg:"" help:"Your zodiac sign."`
	Partner zodiac.Sign `arg:"" help:"Your partner's zodiac sign."`

	WeatherID int    `name:"weather-id" help:"Use this weather scenario instead of a random one."`
	Again     int    `help:"Draw this many extra readings with fresh weather."`
	Card      string `help:"Write the last reading as a PNG card to this path." type:"path"`
	JSON      bool   `help:"Print readings as JSON."`
	Plain     bool   `help:"Print without colours or borders."`
}

func (c *ReadingCmd) Run(g *Globals) error {
	st, closeFn, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := context.Background()
	session := reading.NewSession(st)

	if c.WeatherID > 0 {
		if _, err := session.UseWeather(ctx, c.WeatherID); err != nil {
			return err
		}
	}
	if _, err := session.SelectUserSign(ctx, c.You); err != nil {
		return err
	}
	h, err := session.SelectPartnerSign(ctx, c.Partner)
	if err != nil {
		return err
	}

	readings := []horoscope.Horoscope{*h}
	for i := 0; i < c.Again; i++ {
		next, err := session.NewReading(ctx)
		if err != nil {
			return err
		}
		readings = append(readings, *next)
	}

	if err := c.print(readings); err != nil {
		return err
	}

	if c.Card != "" {
		data, err := imagegen.RenderCard(readings[len(readings)-1])
		if err != nil {
			return fmt.Errorf("render card: %w", err)
		}
		if err := os.WriteFile(c.Card, data, 0644); err != nil {
			return fmt.Errorf("write card: %w", err)
		}
		log.Printf("card written to %s", c.Card)
	}
	return nil
}

func (c *ReadingCmd) print(readings []horoscope.Horoscope) error {
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if len(readings) == 1 {
			return enc.Encode(readings[0])
		}
		return enc.Encode(readings)
	}
	for _, h := range readings {
		if c.Plain {
			fmt.Println(render.Plain(h))
		} else {
			fmt.Println(render.Terminal(h))
		}
	}
	return nil
}

type SignsCmd struct{}

func (c *SignsCmd) Run() error {
	fmt.Print(render.Signs())
	return nil
}

type SeedCmd struct {
	File  string `help:"YAML scenario file to load instead of the built-in set." type:"existingfile"`
	Reset bool   `help:"Delete existing scenarios before seeding."`
}

func (c *SeedCmd) Run(g *Globals) error {
	st, closeFn, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ws, err := c.load()
	if err != nil {
		return err
	}

	if c.Reset {
		if err := st.DeleteAllWeather(); err != nil {
			return fmt.Errorf("reset weather: %w", err)
		}
	}
	if err := st.UpsertWeather(ws...); err != nil {
		return err
	}
	metrics.ScenariosSeeded.Add(float64(len(ws)))
	log.Printf("seeded %d weather scenarios", len(ws))
	return nil
}

func (c *SeedCmd) load() ([]models.Weather, error) {
	if c.File == "" {
		return scenarios.Default()
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, fmt.Errorf("open scenarios: %w", err)
	}
	defer f.Close()

	ws, err := scenarios.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.File, err)
	}
	return ws, nil
}

type WeatherCmd struct {
	List WeatherListCmd `cmd:"" default:"1" help:"List weather scenarios."`
	Show WeatherShowCmd `cmd:"" help:"Show one weather scenario and its influence."`
}

type WeatherListCmd struct{}

func (c *WeatherListCmd) Run(g *Globals) error {
	st, closeFn, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ws, err := st.ListWeather()
	if err != nil {
		return fmt.Errorf("list weather: %w", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCONDITION\tTEMP\tMOOD\t")
	for _, w := range ws {
		fmt.Fprintf(tw, "%d\t%s %s\t%d°C\t%s\t\n", w.ID, w.Emoji, w.Condition, w.Temperature, w.Mood)
	}
	return tw.Flush()
}

type WeatherShowCmd struct {
	ID int `arg:"" help:"Scenario id."`
}

func (c *WeatherShowCmd) Run(g *Globals) error {
	st, closeFn, err := g.openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	w, err := st.GetWeatherByID(c.ID)
	if err != nil {
		return fmt.Errorf("get weather %d: %w", c.ID, err)
	}
	if w == nil {
		return fmt.Errorf("%w: id %d", reading.ErrWeatherNotFound, c.ID)
	}

	fmt.Printf("%s %s, %d°C\n", w.Emoji, w.Condition, w.Temperature)
	fmt.Printf("mood:     %s\n", w.Mood)
	if in, ok := horoscope.ResolveInfluence(w.Mood); ok {
		fmt.Printf("energy:   %s\n", in.EnergyDescription)
		fmt.Printf("activity: %s\n", in.ActivityType)
	} else {
		fmt.Println("influence: none (readings use default phrasing)")
	}
	return nil
}
