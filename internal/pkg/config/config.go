package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, snapshot path, etc.)
// - default: Values common across all environments (tick interval, staleness, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Snapshot SnapshotConfig
	Floor    FloorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Cairo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

type SnapshotConfig struct {
	Path         string        `envconfig:"SNAPSHOT_PATH" default:"playhall-state.json"`
	TickInterval time.Duration `envconfig:"SNAPSHOT_TICK_INTERVAL" default:"1s"`
	Staleness    time.Duration `envconfig:"SNAPSHOT_STALENESS" default:"24h"`
}

// FloorConfig is the fixed station inventory, created once at startup.
type FloorConfig struct {
	Tables       int `envconfig:"FLOOR_TABLES" default:"4"`
	Consoles     int `envconfig:"FLOOR_CONSOLES" default:"6"`
	Workstations int `envconfig:"FLOOR_WORKSTATIONS" default:"6"`
	DiningSpots  int `envconfig:"FLOOR_DINING_SPOTS" default:"4"`
}

func (f FloorConfig) Validate() error {
	if f.Tables < 0 || f.Consoles < 0 || f.Workstations < 0 || f.DiningSpots < 0 {
		return fmt.Errorf("station counts cannot be negative: %+v", f)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Floor.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Cairo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Snapshot: SnapshotConfig{
			Path:         "playhall-state-test.json",
			TickInterval: time.Second,
			Staleness:    24 * time.Hour,
		},
		Floor: FloorConfig{
			Tables:       2,
			Consoles:     2,
			Workstations: 2,
			DiningSpots:  1,
		},
	}
}
