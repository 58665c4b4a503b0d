package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"standcast-backend/internal/features/stats/grading"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Neynar struct {
		BaseURL string `env:"NEYNAR_BASE_URL" envDefault:"https://api.neynar.com"`
		APIKey  string `env:"NEYNAR_API_KEY,required"`
		// SampleLimit bounds the engagement sample; capped at 150 to keep
		// API cost predictable.
		SampleLimit int `env:"ENGAGEMENT_SAMPLE_LIMIT" envDefault:"150"`
	}

	Chain struct {
		ScanAPIURL string `env:"BASESCAN_API_URL" envDefault:"https://api.basescan.org/api"`
		RPCURL     string `env:"BASE_RPC_URL" envDefault:"https://mainnet.base.org"`
		TimeoutSec int    `env:"CHAIN_TIMEOUT_SEC" envDefault:"6"`
	}

	Cache struct {
		TTLSec     int `env:"STATS_CACHE_TTL_SEC" envDefault:"300"`
		MaxEntries int `env:"STATS_CACHE_MAX_ENTRIES" envDefault:"10000"`
	}

	Redis struct {
		Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	// Grading ladders, each a descending "A,B,C,D" quadruple. Overridable
	// so thresholds can be retuned without a redeploy.
	Grading struct {
		PowerScore       []float64 `env:"GRADING_POWER_SCORE" envSeparator:"," envDefault:"90,70,50,30"`
		PowerFollowers   []float64 `env:"GRADING_POWER_FOLLOWERS" envSeparator:"," envDefault:"5000,1000,200,50"`
		SpeedTxns        []float64 `env:"GRADING_SPEED_TXNS" envSeparator:"," envDefault:"500,100,20,5"`
		SpeedCasts       []float64 `env:"GRADING_SPEED_CASTS" envSeparator:"," envDefault:"5000,2000,500,100"`
		Durability       []float64 `env:"GRADING_DURABILITY" envSeparator:"," envDefault:"3000,1000,300,50"`
		Range            []float64 `env:"GRADING_RANGE" envSeparator:"," envDefault:"300,100,30,10"`
		PrecisionQuality []float64 `env:"GRADING_PRECISION_QUALITY" envSeparator:"," envDefault:"10,5,2,1"`
		PrecisionRatio   []float64 `env:"GRADING_PRECISION_RATIO" envSeparator:"," envDefault:"5,2,1,0.5"`
	}
}

func Load() (*Config, error) {
	// .env is optional; in production the variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// CacheTTL returns the stats cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSec) * time.Second
}

// ChainTimeout returns the per-call timeout for on-chain lookups.
func (c *Config) ChainTimeout() time.Duration {
	return time.Duration(c.Chain.TimeoutSec) * time.Second
}

// GradingPolicy assembles the grading ladders, validating every override.
func (c *Config) GradingPolicy() (grading.Policy, error) {
	p := grading.Policy{}
	for _, f := range []struct {
		name string
		raw  []float64
		dst  *grading.Thresholds
	}{
		{"GRADING_POWER_SCORE", c.Grading.PowerScore, &p.PowerScore},
		{"GRADING_POWER_FOLLOWERS", c.Grading.PowerFollowers, &p.PowerFollowers},
		{"GRADING_SPEED_TXNS", c.Grading.SpeedTxns, &p.SpeedTxns},
		{"GRADING_SPEED_CASTS", c.Grading.SpeedCasts, &p.SpeedCasts},
		{"GRADING_DURABILITY", c.Grading.Durability, &p.Durability},
		{"GRADING_RANGE", c.Grading.Range, &p.Range},
		{"GRADING_PRECISION_QUALITY", c.Grading.PrecisionQuality, &p.PrecisionQuality},
		{"GRADING_PRECISION_RATIO", c.Grading.PrecisionRatio, &p.PrecisionRatio},
	} {
		t, err := grading.FromSlice(f.raw)
		if err != nil {
			return grading.Policy{}, fmt.Errorf("config: %s: %w", f.name, err)
		}
		*f.dst = t
	}
	return p, nil
}
