// Package codec encodes and decodes Options and the values around them as
// JSON or YAML.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/libs/go/tiger/either"
	"github.com/authcorp/libs/go/tiger/option"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes YAML to value. The destination is zeroed first so that null
// fields come back as None rather than keeping a previous value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
	return yaml.Unmarshal(data, v)
}

// ForPath picks a codec from the file extension: YAML for .yaml and .yml,
// JSON for everything else.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	default:
		return NewJSONCodec()
	}
}

// EncodeOption encodes o with c. None encodes as the format's null.
func EncodeOption[T any](c Codec, o option.Option[T]) ([]byte, error) {
	return c.Encode(o)
}

// DecodeOption decodes data into an Option. Empty or blank input and an
// explicit null both decode as None.
func DecodeOption[T any](c Codec, data []byte) (option.Option[T], error) {
	var o option.Option[T]
	if len(bytes.TrimSpace(data)) == 0 {
		return o, nil
	}
	if err := c.Decode(data, &o); err != nil {
		return option.None[T](), err
	}
	return o, nil
}

// ErrNullValue is returned on the left by DecodeEither when the input decodes
// to a nil pointer or interface.
var ErrNullValue = errors.New("codec: decoded value is null")

// DecodeEither decodes data into a T, returning the decode error on the left.
func DecodeEither[T any](c Codec, data []byte) either.Either[error, T] {
	var v T
	if err := c.Decode(data, &v); err != nil {
		return either.Left[error, T](err)
	}
	return option.ToEither(option.From(v), ErrNullValue)
}

// MustDecode decodes or panics.
func MustDecode[T any](c Codec, data []byte) T {
	var v T
	if err := c.Decode(data, &v); err != nil {
		panic(err)
	}
	return v
}
