// Package config loads the generation profile and runtime settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// MonthLayout is the YYYY-MM form used for trend bounds.
const MonthLayout = "2006-01"

type Channel struct {
	Name           string  `yaml:"name" validate:"required"`
	BaseApplicants int     `yaml:"base_applicants" validate:"gt=0"`
	ConversionRate float64 `yaml:"conversion_rate" validate:"gte=0,lte=100"`
	CostPerClick   int64   `yaml:"cost_per_click" validate:"gte=0"`
}

type Region struct {
	Name   string  `yaml:"name" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
	Tier   string  `yaml:"tier" validate:"oneof=capital metro other"`
}

type Stage struct {
	Name  string  `yaml:"name" validate:"required"`
	Ratio float64 `yaml:"ratio" validate:"gte=0,lte=1"`
}

type Trend struct {
	Start          string `yaml:"start" validate:"required"`
	End            string `yaml:"end" validate:"required"`
	BaseApplicants int    `yaml:"base_applicants" validate:"gt=0"`
}

type Funnel struct {
	TotalApplicants int     `yaml:"total_applicants" validate:"gt=0"`
	Stages          []Stage `yaml:"stages" validate:"min=1,dive"`
}

type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Config is the full runtime configuration.
type Config struct {
	// Seed drives every random draw of a session. Zero asks for a
	// time-derived seed.
	Seed               int64     `yaml:"seed"`
	Candidates         int       `yaml:"candidates" validate:"gt=0"`
	PerHireValue       int64     `yaml:"per_hire_value" validate:"gte=0"`
	Channels           []Channel `yaml:"channels" validate:"min=1,dive"`
	Regions            []Region  `yaml:"regions" validate:"min=1,dive"`
	RegionalPopulation int       `yaml:"regional_population" validate:"gt=0"`
	Trend              Trend     `yaml:"trend"`
	Funnel             Funnel    `yaml:"funnel"`
	PageSize           int       `yaml:"page_size" validate:"gte=0"`
	Log                Log       `yaml:"log"`
}

// Default mirrors generation.DefaultParams.
func Default() Config {
	p := generation.DefaultParams()

	channels := make([]Channel, len(p.Channels))
	for i, c := range p.Channels {
		channels[i] = Channel{
			Name:           string(c.Name),
			BaseApplicants: c.BaseApplicants,
			ConversionRate: c.ConversionRate,
			CostPerClick:   c.CostPerClick,
		}
	}
	regions := make([]Region, len(p.Regions))
	for i, r := range p.Regions {
		regions[i] = Region{Name: r.Name, Weight: r.Weight, Tier: string(r.Tier)}
	}
	stages := make([]Stage, len(p.FunnelStages))
	for i, s := range p.FunnelStages {
		stages[i] = Stage{Name: s.Name, Ratio: s.Ratio}
	}

	return Config{
		Candidates:         p.Candidates,
		PerHireValue:       domain.DefaultPerHireValue.IntPart(),
		Channels:           channels,
		Regions:            regions,
		RegionalPopulation: p.RegionalPopulation,
		Trend: Trend{
			Start:          p.TrendStart.Format(MonthLayout),
			End:            p.TrendEnd.Format(MonthLayout),
			BaseApplicants: p.TrendBaseApplicants,
		},
		Funnel:   Funnel{TotalApplicants: p.FunnelTotal, Stages: stages},
		PageSize: 10,
		Log:      Log{Level: "info", Format: "json"},
	}
}

// Load reads a YAML file over Default and validates the result. Keys absent
// from the file keep their defaults; lists present in the file replace the
// default list whole.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate applies struct tag rules plus cross-field checks.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	start, end, err := c.trendRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: trend.start %s after trend.end %s", ErrInvalidConfig, c.Trend.Start, c.Trend.End)
	}

	weight := 0.0
	for _, r := range c.Regions {
		weight += r.Weight
	}
	if weight <= 0 {
		return fmt.Errorf("%w: region weights sum to zero", ErrInvalidConfig)
	}
	return nil
}

func (c Config) trendRange() (time.Time, time.Time, error) {
	start, err := time.Parse(MonthLayout, c.Trend.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: trend.start: %v", ErrInvalidConfig, err)
	}
	end, err := time.Parse(MonthLayout, c.Trend.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: trend.end: %v", ErrInvalidConfig, err)
	}
	return start, end, nil
}

// Params converts the configuration into generation inputs.
func (c Config) Params() (generation.Params, error) {
	start, end, err := c.trendRange()
	if err != nil {
		return generation.Params{}, err
	}

	channels := make([]generation.ChannelSpec, len(c.Channels))
	for i, ch := range c.Channels {
		channels[i] = generation.ChannelSpec{
			Name:           domain.Source(ch.Name),
			BaseApplicants: ch.BaseApplicants,
			ConversionRate: ch.ConversionRate,
			CostPerClick:   ch.CostPerClick,
		}
	}
	regions := make([]generation.RegionSpec, len(c.Regions))
	for i, r := range c.Regions {
		regions[i] = generation.RegionSpec{Name: r.Name, Weight: r.Weight, Tier: domain.RegionTier(r.Tier)}
	}
	stages := make([]generation.StageSpec, len(c.Funnel.Stages))
	for i, s := range c.Funnel.Stages {
		stages[i] = generation.StageSpec{Name: s.Name, Ratio: s.Ratio}
	}

	return generation.Params{
		Candidates:          c.Candidates,
		Channels:            channels,
		Regions:             regions,
		RegionalPopulation:  c.RegionalPopulation,
		TrendStart:          start,
		TrendEnd:            end,
		TrendBaseApplicants: c.Trend.BaseApplicants,
		FunnelTotal:         c.Funnel.TotalApplicants,
		FunnelStages:        stages,
	}, nil
}

// PerHire returns the per-hire value used for channel ROI.
func (c Config) PerHire() decimal.Decimal {
	return decimal.NewFromInt(c.PerHireValue)
}
