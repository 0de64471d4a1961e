package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomrecon/internal/config"
	"ecomrecon/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
[database]
dsn = "recon.db"
`))
	require.NoError(t, err)

	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "recon.db", cfg.Database.DSN)

	tolerance, err := cfg.Reconciliation.DefaultTolerance()
	require.NoError(t, err)
	require.NotNil(t, tolerance)
	assert.True(t, tolerance.Equal(decimal.RequireFromString("0.01")))

	pattern, err := cfg.Reconciliation.Pattern()
	require.NoError(t, err)
	assert.True(t, pattern.MatchString("12345"))
	assert.True(t, pattern.MatchString("ORD001"))
	assert.False(t, pattern.MatchString("ORD-1"))
}

func TestLoad_UnitOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
[database]
driver = "postgres"
dsn = "postgres://localhost/recon"

[reconciliation]
tolerance = "0.05"

[reconciliation.units."Cybersource Reconciliation"]
tolerance = "0"
`))
	require.NoError(t, err)

	tolerance, err := cfg.Reconciliation.DefaultTolerance()
	require.NoError(t, err)
	require.NotNil(t, tolerance)
	assert.True(t, tolerance.Equal(decimal.RequireFromString("0.05")))

	overrides, err := cfg.Reconciliation.UnitTolerances()
	require.NoError(t, err)
	override, ok := overrides[domain.TypeCybersource]
	require.True(t, ok)
	assert.True(t, override.IsZero(), "explicit zero means exact equality")
}

func TestLoad_ExplicitZeroGlobalTolerance(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
[database]
dsn = "recon.db"

[reconciliation]
tolerance = "0"
`))
	require.NoError(t, err)

	tolerance, err := cfg.Reconciliation.DefaultTolerance()
	require.NoError(t, err)
	require.NotNil(t, tolerance, `"0" is an explicit value, not absence`)
	assert.True(t, tolerance.IsZero())
}

func TestLoad_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown driver",
			body: "[database]\ndriver = \"oracle\"\ndsn = \"x\"\n",
		},
		{
			name: "missing dsn",
			body: "[database]\ndriver = \"sqlite\"\ndsn = \"\"\n",
		},
		{
			name: "negative tolerance",
			body: "[reconciliation]\ntolerance = \"-0.01\"\n",
		},
		{
			name: "malformed tolerance",
			body: "[reconciliation]\ntolerance = \"abc\"\n",
		},
		{
			name: "invalid pattern",
			body: "[reconciliation]\norder_number_pattern = \"[\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
