package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/libs/go/tiger/codec"
	"github.com/authcorp/libs/go/tiger/option"
)

type endpoint struct {
	Host    string                `json:"host" yaml:"host"`
	Port    option.Option[int]    `json:"port" yaml:"port"`
	Comment option.Option[string] `json:"comment,omitzero" yaml:"comment,omitempty"`
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want codec.Codec
	}{
		{"service.yaml", codec.NewYAMLCodec()},
		{"service.YML", codec.NewYAMLCodec()},
		{"service.json", codec.NewJSONCodec()},
		{"service", codec.NewJSONCodec()},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.IsType(t, tt.want, codec.ForPath(tt.path))
		})
	}
}

func TestEncodeOption(t *testing.T) {
	data, err := codec.EncodeOption(codec.NewJSONCodec(), option.Some(8080))
	require.NoError(t, err)
	assert.Equal(t, "8080", string(data))

	data, err = codec.EncodeOption(codec.NewJSONCodec(), option.None[int]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = codec.EncodeOption(codec.NewYAMLCodec(), option.None[int]())
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(data))
}

func TestDecodeOption(t *testing.T) {
	codecs := map[string]codec.Codec{
		"json": codec.NewJSONCodec(),
		"yaml": codec.NewYAMLCodec(),
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			o, err := codec.DecodeOption[int](c, []byte("42"))
			require.NoError(t, err)
			assert.Equal(t, option.Some(42), o)

			o, err = codec.DecodeOption[int](c, []byte("  \n"))
			require.NoError(t, err)
			assert.True(t, o.IsNone())

			o, err = codec.DecodeOption[int](c, []byte("null"))
			require.NoError(t, err)
			assert.True(t, o.IsNone())

			_, err = codec.DecodeOption[int](c, []byte(`"forty"`))
			assert.Error(t, err)
		})
	}
}

func TestStructRoundTrip(t *testing.T) {
	in := endpoint{Host: "db.internal", Port: option.Some(5432)}

	for _, c := range []codec.Codec{codec.NewJSONCodec().WithPretty(), codec.NewYAMLCodec()} {
		data, err := c.Encode(in)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "comment")

		out := codec.MustDecode[endpoint](c, data)
		assert.Equal(t, in, out)
	}
}

func TestYAMLDecodeNullClearsExistingValue(t *testing.T) {
	out := endpoint{Host: "old", Port: option.Some(1), Comment: option.Some("keep?")}

	require.NoError(t, codec.NewYAMLCodec().Decode([]byte("host: db\nport: null\n"), &out))
	assert.Equal(t, endpoint{Host: "db"}, out)

	o := option.Some(5)
	require.NoError(t, codec.NewYAMLCodec().Decode([]byte("~"), &o))
	assert.True(t, o.IsNone())
}

func TestDecodeEither(t *testing.T) {
	c := codec.NewJSONCodec()

	e := codec.DecodeEither[endpoint](c, []byte(`{"host":"a","port":null}`))
	require.True(t, e.IsRight())
	assert.Equal(t, "a", e.RightValue().Host)
	assert.True(t, e.RightValue().Port.IsNone())

	e = codec.DecodeEither[endpoint](c, []byte(`{`))
	assert.True(t, e.IsLeft())

	p := codec.DecodeEither[*endpoint](c, []byte(`null`))
	require.True(t, p.IsLeft())
	assert.ErrorIs(t, p.LeftValue(), codec.ErrNullValue)
}

func TestMustDecodePanics(t *testing.T) {
	assert.Panics(t, func() { codec.MustDecode[int](codec.NewJSONCodec(), []byte("x")) })
}
