package config

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the full runtime configuration, loaded from one TOML file.
type Config struct {
	Database       Database       `toml:"database"`
	Logging        Logging        `toml:"logging"`
	Metrics        Metrics        `toml:"metrics"`
	Reconciliation Reconciliation `toml:"reconciliation"`
}

// Database selects the store driver and connection string.
type Database struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

// Logging names the service in emitted log lines.
type Logging struct {
	Service string `toml:"service"`
	Env     string `toml:"env"`
}

// Metrics enables the optional prometheus listener when an address is set.
type Metrics struct {
	ListenAddress string `toml:"listen_address"`
}

// Reconciliation carries the comparison parameters. Tolerances are decimal
// strings so exact values like "0" survive parsing untouched.
type Reconciliation struct {
	Tolerance          string          `toml:"tolerance"`
	OrderNumberPattern string          `toml:"order_number_pattern"`
	Units              map[string]Unit `toml:"units"`
}

// Unit overrides parameters for one reconciliation type, keyed by its name.
type Unit struct {
	Tolerance string `toml:"tolerance"`
}

// Default returns the configuration used when the file omits a value.
func Default() Config {
	return Config{
		Database: Database{
			Driver: DriverSQLite,
			DSN:    "ecomrecon.db",
		},
		Logging: Logging{
			Service: "ecomrecon",
		},
		Reconciliation: Reconciliation{
			Tolerance:          "0.01",
			OrderNumberPattern: `^(ORD)?[0-9]+$`,
		},
	}
}

// Load reads the TOML file at path over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("config: database dsn is required")
	}
	if _, err := c.Reconciliation.DefaultTolerance(); err != nil {
		return err
	}
	if _, err := c.Reconciliation.UnitTolerances(); err != nil {
		return err
	}
	if _, err := c.Reconciliation.Pattern(); err != nil {
		return err
	}
	return nil
}

// DefaultTolerance parses the global tolerance. Nil means the file left it
// unset; an explicit "0" comes back as a zero value and demands exact
// equality.
func (r Reconciliation) DefaultTolerance() (*decimal.Decimal, error) {
	if r.Tolerance == "" {
		return nil, nil
	}
	t, err := parseTolerance("reconciliation", r.Tolerance)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UnitTolerances parses the per-type overrides, keyed by reconciliation type.
func (r Reconciliation) UnitTolerances() (map[string]decimal.Decimal, error) {
	overrides := make(map[string]decimal.Decimal, len(r.Units))
	for name, unit := range r.Units {
		if unit.Tolerance == "" {
			continue
		}
		t, err := parseTolerance(name, unit.Tolerance)
		if err != nil {
			return nil, err
		}
		overrides[name] = t
	}
	return overrides, nil
}

// Pattern compiles the order-number well-formedness rule.
func (r Reconciliation) Pattern() (*regexp.Regexp, error) {
	pattern, err := regexp.Compile(r.OrderNumberPattern)
	if err != nil {
		return nil, fmt.Errorf("config: order_number_pattern: %w", err)
	}
	return pattern, nil
}

func parseTolerance(scope, raw string) (decimal.Decimal, error) {
	t, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("config: %s tolerance %q: %w", scope, raw, err)
	}
	if t.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("config: %s tolerance %q is negative", scope, raw)
	}
	return t, nil
}
