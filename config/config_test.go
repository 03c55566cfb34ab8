package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/libs/go/tiger/config"
	"github.com/authcorp/libs/go/tiger/option"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLookupMissingIsNone(t *testing.T) {
	c := config.New()
	assert.True(t, c.Lookup("absent").IsNone())
	assert.True(t, c.Int("absent").IsNone())
	assert.Equal(t, 30, c.Int("absent").ValueOr(30))
}

func TestLayering(t *testing.T) {
	path := writeFile(t, "app.yaml", "db:\n  host: db.internal\n  port: 5432\ntimeout: 5s\nreplica: ~\n")
	t.Setenv("TIGERTEST_DB_PORT", "6543")

	c := config.New().WithDefaults(map[string]any{
		"db": map[string]any{"host": "localhost", "pool": 4},
	})
	require.NoError(t, c.LoadFile(path))
	c.LoadEnv("TIGERTEST")

	assert.Equal(t, option.Some("db.internal"), c.String("db.host"))
	assert.Equal(t, option.Some(6543), c.Int("db.port"), "env overrides file")
	assert.Equal(t, option.Some(4), c.Int("db.pool"), "defaults fill gaps")
	assert.Equal(t, option.Some(5*time.Second), c.Duration("timeout"))
	assert.True(t, c.Lookup("replica").IsNone(), "explicit null is None")
}

func TestLoadJSONFile(t *testing.T) {
	path := writeFile(t, "app.json", `{"ratio": 0.5, "workers": 8, "debug": true, "tags": ["a", "b"]}`)

	c := config.New()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, option.Some(0.5), c.Float("ratio"))
	assert.Equal(t, option.Some(8), c.Int("workers"))
	assert.True(t, c.Int("ratio").IsNone(), "fractional values are not ints")
	assert.Equal(t, option.Some(true), c.Bool("debug"))
	assert.Equal(t, option.Some([]string{"a", "b"}), c.StringSlice("tags"))
}

func TestLoadFileErrors(t *testing.T) {
	c := config.New()
	assert.Error(t, c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, c.LoadFile(writeFile(t, "broken.json", "{")))
}

func TestTypedAccessors(t *testing.T) {
	c := config.New()
	c.Set("enabled", "yes")
	c.Set("disabled", "0")
	c.Set("bogus", "maybe")
	c.Set("hosts", "a,b,c")
	c.Set("interval", "not a duration")
	c.Set("count", "12")

	assert.Equal(t, option.Some(true), c.Bool("enabled"))
	assert.Equal(t, option.Some(false), c.Bool("disabled"))
	assert.True(t, c.Bool("bogus").IsNone())
	assert.Equal(t, option.Some([]string{"a", "b", "c"}), c.StringSlice("hosts"))
	assert.True(t, c.Duration("interval").IsNone())
	assert.Equal(t, option.Some(12), c.Int("count"))
	assert.Equal(t, option.Some(12.0), c.Float("count"))
	assert.Equal(t, option.Some("12"), c.String("count"))

	c.Set("huge", uint64(math.MaxUint64))
	c.Set("wide", int64(math.MaxInt32))
	assert.True(t, c.Int("huge").IsNone())
	assert.Equal(t, option.Some(math.MaxInt32), c.Int("wide"))
}

func TestIntOverflowFromYAML(t *testing.T) {
	c := config.New()
	require.NoError(t, c.LoadFile(writeFile(t, "big.yaml", "big: 18446744073709551615
")))

	assert.True(t, c.Lookup("big").IsSome())
	assert.True(t, c.Int("big").IsNone())
}

func TestValidate(t *testing.T) {
	c := config.New().WithDefaults(map[string]any{"port": 80})
	c.Set("host", "example.com")

	require.NoError(t, c.Validate("host", "port"))

	err := c.Validate("host", "token", "secret")
	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"token", "secret"}, verr.MissingKeys)
}

func TestAll(t *testing.T) {
	c := config.New().WithDefaults(map[string]any{"a": 1, "b": 2})
	c.Set("b", 3)

	assert.Equal(t, map[string]any{"a": 1, "b": 3}, c.All())
}
