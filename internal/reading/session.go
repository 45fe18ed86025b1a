// Package reading holds the state of an interactive horoscope reading: the
// two selected signs, the current weather and the last generated horoscope.
package reading

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lox/cosmicweather/internal/horoscope"
	"github.com/lox/cosmicweather/internal/metrics"
	"github.com/lox/cosmicweather/internal/models"
	"github.com/lox/cosmicweather/internal/zodiac"
)

var (
	ErrSignsIncomplete = errors.New("both signs must be selected")
	ErrNoWeatherData   = errors.New("unable to load weather data")
	ErrWeatherNotFound = errors.New("weather scenario not found")
)

const (
	defaultRetryDelay = 200 * time.Millisecond
	defaultMaxRetries = 5
)

// WeatherSource supplies weather scenarios. Both methods return nil with no
// error when nothing matches.
type WeatherSource interface {
	GetRandomWeather() (*models.Weather, error)
	GetWeatherByID(id int) (*models.Weather, error)
}

type Session struct {
	source     WeatherSource
	retryDelay time.Duration
	maxRetries uint64

	mu        sync.Mutex
	user      *zodiac.Sign
	partner   *zodiac.Sign
	weather   *models.Weather
	horoscope *horoscope.Horoscope
}

type Option func(*Session)

// WithRetry overrides how long to wait between weather lookups while the
// store is empty, and how many extra attempts to make.
func WithRetry(delay time.Duration, maxRetries uint64) Option {
	return func(s *Session) {
		s.retryDelay = delay
		s.maxRetries = maxRetries
	}
}

func NewSession(source WeatherSource, opts ...Option) *Session {
	s := &Session{
		source:     source,
		retryDelay: defaultRetryDelay,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadWeather fetches a random scenario, retrying on a short fixed delay
// while the store returns nothing.
func (s *Session) LoadWeather(ctx context.Context) (*models.Weather, error) {
	w, err := s.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()
	return w, nil
}

// UseWeather pins the session to a specific scenario and regenerates the
// horoscope if both signs are selected.
func (s *Session) UseWeather(ctx context.Context, id int) (*horoscope.Horoscope, error) {
	w, err := s.source.GetWeatherByID(id)
	if err != nil {
		metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get weather %d: %w", id, err)
	}
	if w == nil {
		metrics.WeatherFetches.WithLabelValues("missing").Inc()
		return nil, fmt.Errorf("%w: id %d", ErrWeatherNotFound, id)
	}
	metrics.WeatherFetches.WithLabelValues("found").Inc()

	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()
	return s.regenerate(ctx)
}

// SelectUserSign sets the user's sign. Once both signs are set the horoscope
// is generated with the current weather; until then it returns nil.
func (s *Session) SelectUserSign(ctx context.Context, sign zodiac.Sign) (*horoscope.Horoscope, error) {
	s.mu.Lock()
	s.user = &sign
	s.mu.Unlock()
	return s.regenerate(ctx)
}

// SelectPartnerSign sets the partner's sign. See SelectUserSign.
func (s *Session) SelectPartnerSign(ctx context.Context, sign zodiac.Sign) (*horoscope.Horoscope, error) {
	s.mu.Lock()
	s.partner = &sign
	s.mu.Unlock()
	return s.regenerate(ctx)
}

// NewReading draws fresh random weather and regenerates the horoscope.
func (s *Session) NewReading(ctx context.Context) (*horoscope.Horoscope, error) {
	s.mu.Lock()
	user, partner := s.user, s.partner
	s.mu.Unlock()
	if user == nil || partner == nil {
		return nil, ErrSignsIncomplete
	}

	w, err := s.fetch()
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNoWeatherData
	}

	s.mu.Lock()
	s.weather = w
	s.mu.Unlock()
	return s.generate(*user, *partner, w)
}

// regenerate builds a horoscope if both signs are set, loading weather first
// when none has been drawn yet.
func (s *Session) regenerate(ctx context.Context) (*horoscope.Horoscope, error) {
	s.mu.Lock()
	user, partner, w := s.user, s.partner, s.weather
	s.mu.Unlock()
	if user == nil || partner == nil {
		return nil, nil
	}

	if w == nil {
		var err error
		if w, err = s.LoadWeather(ctx); err != nil {
			return nil, err
		}
	}
	return s.generate(*user, *partner, w)
}

func (s *Session) generate(user, partner zodiac.Sign, w *models.Weather) (*horoscope.Horoscope, error) {
	h, err := horoscope.Generate(user, partner, w)
	if err != nil {
		return nil, fmt.Errorf("generate horoscope: %w", err)
	}

	influence := "known"
	if _, ok := horoscope.ResolveInfluence(w.Mood); !ok {
		influence = "unknown"
	}
	metrics.ReadingsGenerated.WithLabelValues(w.Mood, influence).Inc()

	s.mu.Lock()
	s.horoscope = &h
	s.mu.Unlock()
	return &h, nil
}

func (s *Session) fetch() (*models.Weather, error) {
	w, err := s.source.GetRandomWeather()
	switch {
	case err != nil:
		metrics.WeatherFetches.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get random weather: %w", err)
	case w == nil:
		metrics.WeatherFetches.WithLabelValues("empty").Inc()
	default:
		metrics.WeatherFetches.WithLabelValues("found").Inc()
	}
	return w, nil
}

func (s *Session) fetchWithRetry(ctx context.Context) (*models.Weather, error) {
	var w *models.Weather
	attempt := 0
	operation := func() error {
		attempt++
		got, err := s.fetch()
		if err != nil {
			return backoff.Permanent(err)
		}
		if got == nil {
			return ErrNoWeatherData
		}
		w = got
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryDelay), s.maxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		if errors.Is(err, ErrNoWeatherData) {
			log.Printf("reading: no weather after %d attempts", attempt)
		}
		return nil, err
	}
	if attempt > 1 {
		log.Printf("reading: weather loaded after %d attempts", attempt)
	}
	return w, nil
}

func (s *Session) UserSign() (zodiac.Sign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0, false
	}
	return *s.user, true
}

func (s *Session) PartnerSign() (zodiac.Sign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.partner == nil {
		return 0, false
	}
	return *s.partner, true
}

func (s *Session) Weather() *models.Weather {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weather
}

func (s *Session) Horoscope() *horoscope.Horoscope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.horoscope
}
