package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Geocoder  GeocoderConfig  `yaml:"geocoder"`
	Timezone  TimezoneConfig  `yaml:"timezone"`
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// GeocoderConfig points at the Nominatim search endpoint.
type GeocoderConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	UserAgent string        `yaml:"userAgent"`
	Country   string        `yaml:"country"`
	Timeout   time.Duration `yaml:"timeout"`
}

// TimezoneConfig holds the zone used when a point has no boundary match.
type TimezoneConfig struct {
	Default string `yaml:"default"`
}

// EphemerisConfig selects the data files and the sidereal frame.
type EphemerisConfig struct {
	DataDir     string `yaml:"dataDir"`
	Ayanamsa    string `yaml:"ayanamsa"`
	HouseSystem string `yaml:"houseSystem"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("GEOCODER_BASE_URL"); v != "" {
		cfg.Geocoder.BaseURL = v
	}
	if v := os.Getenv("GEOCODER_USER_AGENT"); v != "" {
		cfg.Geocoder.UserAgent = v
	}
	if v := os.Getenv("GEOCODER_COUNTRY"); v != "" {
		cfg.Geocoder.Country = v
	}
	if v := os.Getenv("GEOCODER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Geocoder.Timeout = parsed
		}
	}
	if v := os.Getenv("TIMEZONE_DEFAULT"); v != "" {
		cfg.Timezone.Default = v
	}
	if v := os.Getenv("EPHEMERIS_DATA_DIR"); v != "" {
		cfg.Ephemeris.DataDir = v
	} else if v := os.Getenv("VSOP87"); v != "" && cfg.Ephemeris.DataDir == "" {
		cfg.Ephemeris.DataDir = v
	}
	if v := os.Getenv("EPHEMERIS_AYANAMSA"); v != "" {
		cfg.Ephemeris.Ayanamsa = v
	}
	if v := os.Getenv("EPHEMERIS_HOUSE_SYSTEM"); v != "" {
		cfg.Ephemeris.HouseSystem = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      "0.0.0.0:10000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Geocoder: GeocoderConfig{
			BaseURL:   "https://nominatim.openstreetmap.org/search",
			UserAgent: "soulvista_engine",
			Country:   "India",
			Timeout:   10 * time.Second,
		},
		Timezone: TimezoneConfig{
			Default: "Asia/Kolkata",
		},
		Ephemeris: EphemerisConfig{
			Ayanamsa:    "lahiri",
			HouseSystem: "W",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Geocoder.BaseURL) == "" {
		return errors.New("geocoder.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Geocoder.UserAgent) == "" {
		return errors.New("geocoder.userAgent cannot be empty")
	}
	if c.Geocoder.Timeout <= 0 {
		return errors.New("geocoder.timeout must be positive")
	}
	if strings.TrimSpace(c.Timezone.Default) == "" {
		return errors.New("timezone.default cannot be empty")
	}
	if _, err := time.LoadLocation(c.Timezone.Default); err != nil {
		return fmt.Errorf("timezone.default: %w", err)
	}
	if !strings.EqualFold(c.Ephemeris.Ayanamsa, "lahiri") {
		return fmt.Errorf("ephemeris.ayanamsa %q is not supported", c.Ephemeris.Ayanamsa)
	}
	if c.Ephemeris.HouseSystem != "W" {
		return fmt.Errorf("ephemeris.houseSystem %q is not supported", c.Ephemeris.HouseSystem)
	}
	return nil
}
