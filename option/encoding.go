package option

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some(v) as v.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = From(v)
	return nil
}

// MarshalYAML encodes None as null and Some(v) as v.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.present {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML decodes a non-null node as Some. yaml.v3 skips unmarshalers
// for null nodes and leaves the destination untouched, so null and ~ only
// read as None when decoding into a fresh zero value; codec.YAMLCodec zeroes
// its destination for that reason.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = From(v)
	return nil
}

// MarshalText encodes None as empty text. Present values use their own
// encoding.TextMarshaler, or their string, bool or numeric form.
func (o Option[T]) MarshalText() ([]byte, error) {
	if !o.present {
		return []byte{}, nil
	}
	return encodeText(reflect.ValueOf(&o.value).Elem())
}

// UnmarshalText decodes empty text as None. Otherwise the text is parsed with
// T's own encoding.TextUnmarshaler, or as a string, bool or number.
func (o *Option[T]) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = None[T]()
		return nil
	}
	var v T
	if err := decodeText(reflect.ValueOf(&v).Elem(), text); err != nil {
		return err
	}
	*o = From(v)
	return nil
}

func encodeText(v reflect.Value) ([]byte, error) {
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(encoding.TextMarshaler); ok {
			return m.MarshalText()
		}
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return encodeText(v.Elem())
	case reflect.String:
		return []byte(v.String()), nil
	case reflect.Bool:
		return strconv.AppendBool(nil, v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(nil, v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.AppendFloat(nil, v.Float(), 'g', -1, v.Type().Bits()), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Bytes(), nil
		}
	}
	return nil, fmt.Errorf("option: cannot encode %s as text", v.Type())
}

func decodeText(dst reflect.Value, text []byte) error {
	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return decodeText(dst.Elem(), text)
	}
	if dst.CanAddr() {
		if u, ok := dst.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText(text)
		}
	}
	s := string(text)
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("option: %w", err)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("option: %w", err)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("option: %w", err)
		}
		dst.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("option: %w", err)
		}
		dst.SetFloat(f)
	case reflect.Slice:
		if dst.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("option: cannot decode text into %s", dst.Type())
		}
		dst.SetBytes(bytes.Clone(text))
	default:
		return fmt.Errorf("option: cannot decode text into %s", dst.Type())
	}
	return nil
}
