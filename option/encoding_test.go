package option_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/libs/go/tiger/option"
)

type profile struct {
	Name    option.Option[string]    `json:"name" yaml:"name"`
	Age     option.Option[int]       `json:"age,omitzero" yaml:"age,omitempty"`
	Account option.Option[uuid.UUID] `json:"account,omitzero" yaml:"account,omitempty"`
}

func TestJSONRoundTrip(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	in := profile{Name: option.Some("ada"), Account: option.Some(id)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada","account":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`, string(data))

	var out profile
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONNullIsNone(t *testing.T) {
	var out profile
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"age":41}`), &out))

	assert.True(t, out.Name.IsNone())
	assert.Equal(t, option.Some(41), out.Age)
	assert.True(t, out.Account.IsNone(), "missing field stays None")

	data, err := json.Marshal(profile{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null}`, string(data))
}

func TestJSONRejectsMismatchedValue(t *testing.T) {
	var o option.Option[int]
	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &o))
}

func TestYAMLRoundTrip(t *testing.T) {
	in := profile{Name: option.Some("grace"), Age: option.Some(85)}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "name: grace\nage: 85\n", string(data))

	var out profile
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLNullIsNone(t *testing.T) {
	var out profile
	require.NoError(t, yaml.Unmarshal([]byte("name: ~\nage: 3\n"), &out))
	assert.True(t, out.Name.IsNone())
	assert.Equal(t, option.Some(3), out.Age)

	data, err := yaml.Marshal(profile{})
	require.NoError(t, err)
	assert.Equal(t, "name: null\n", string(data))
}

func TestText(t *testing.T) {
	id := uuid.New()

	text, err := option.Some(id).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, id.String(), string(text))

	var decoded option.Option[uuid.UUID]
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, option.Some(id), decoded)

	text, err = option.Some(-12).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-12", string(text))

	text, err = option.None[int]().MarshalText()
	require.NoError(t, err)
	assert.Empty(t, text)

	var flag option.Option[bool]
	require.NoError(t, flag.UnmarshalText([]byte("true")))
	assert.Equal(t, option.Some(true), flag)

	var name option.Option[string]
	require.NoError(t, name.UnmarshalText(nil))
	assert.True(t, name.IsNone())
}

func TestTextErrors(t *testing.T) {
	var n option.Option[int8]
	assert.Error(t, n.UnmarshalText([]byte("300")))
	assert.True(t, n.IsNone())

	_, err := option.Some([]int{1}).MarshalText()
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var n option.Option[int64]
	require.NoError(t, n.Scan(int64(5)))
	assert.Equal(t, option.Some[int64](5), n)

	require.NoError(t, n.Scan(nil))
	assert.True(t, n.IsNone())

	var s option.Option[string]
	require.NoError(t, s.Scan([]byte("hi")))
	assert.Equal(t, option.Some("hi"), s)

	assert.Error(t, n.Scan("not a number"))
}

func TestToNull(t *testing.T) {
	n := option.Some("x").ToNull()
	assert.True(t, n.Valid)
	assert.Equal(t, "x", n.V)

	assert.False(t, option.None[string]().ToNull().Valid)
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("lookup", "hit", option.Some(3), "miss", option.None[int]())

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.EqualValues(t, 3, record["hit"])
	assert.Equal(t, "None", record["miss"])
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got := option.Some("v").Log(context.Background(), logger, "resolved")
	assert.Equal(t, option.Some("v"), got)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolved", record["msg"])
	assert.Equal(t, true, record["present"])
	assert.Equal(t, "v", record["value"])

	assert.Panics(t, func() { option.None[int]().Log(context.Background(), nil, "x") })
}
