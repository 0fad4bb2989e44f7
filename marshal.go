package fluentser

import (
	"encoding"
	"reflect"
	"sort"
	"strings"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	json "github.com/goccy/go-json"
)

// Marshal presents an arbitrary Go value to a Serializer, invoking the
// protocol method matching the value's runtime shape:
//
//   - nil, nil pointers and nil interfaces are absent values
//   - non-nil pointers are options around their pointee
//   - booleans, integers, floats, strings and []byte map to their scalar calls
//   - other slices are sequences, arrays are tuples
//   - maps are map-shaped composites; string keys are visited in sorted
//     order, since Go map iteration order is randomized
//   - structs are struct-shaped composites of their exported fields, renamed
//     or skipped via the `fluent` tag; anonymous embedded structs are
//     flattened; an exported-field-free named struct is a unit struct
//   - null/v8 scalar types are options: absent when invalid, otherwise the
//     wrapped value
//   - null.JSON, sqlboiler types.JSON and json.RawMessage are decoded and
//     re-driven through SerializeJSON
//   - values implementing Marshaler describe themselves; values implementing
//     encoding.TextMarshaler (time.Time among them) become strings
//
// Channels, functions and complex numbers have no representation and fail
// with ErrUnsupportedType.
func Marshal(v any, s Serializer) error {
	if v == nil {
		return s.SerializeNil()
	}
	switch x := v.(type) {
	case Marshaler:
		return x.MarshalFluent(s)
	case null.String:
		return marshalNullable(x.Valid, x.String, s)
	case null.Bool:
		return marshalNullable(x.Valid, x.Bool, s)
	case null.Int:
		return marshalNullable(x.Valid, x.Int, s)
	case null.Int8:
		return marshalNullable(x.Valid, x.Int8, s)
	case null.Int16:
		return marshalNullable(x.Valid, x.Int16, s)
	case null.Int32:
		return marshalNullable(x.Valid, x.Int32, s)
	case null.Int64:
		return marshalNullable(x.Valid, x.Int64, s)
	case null.Uint:
		return marshalNullable(x.Valid, x.Uint, s)
	case null.Uint8:
		return marshalNullable(x.Valid, x.Uint8, s)
	case null.Uint16:
		return marshalNullable(x.Valid, x.Uint16, s)
	case null.Uint32:
		return marshalNullable(x.Valid, x.Uint32, s)
	case null.Uint64:
		return marshalNullable(x.Valid, x.Uint64, s)
	case null.Float32:
		return marshalNullable(x.Valid, x.Float32, s)
	case null.Float64:
		return marshalNullable(x.Valid, x.Float64, s)
	case null.Byte:
		return marshalNullable(x.Valid, x.Byte, s)
	case null.Bytes:
		return marshalNullable(x.Valid, x.Bytes, s)
	case null.Time:
		return marshalNullable(x.Valid, x.Time, s)
	case null.JSON:
		if !x.Valid {
			return s.SerializeNil()
		}
		return SerializeJSON(x.JSON, s)
	case boilertypes.JSON:
		return SerializeJSON([]byte(x), s)
	case json.RawMessage:
		return SerializeJSON(x, s)
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return err
		}
		return s.SerializeString(string(text))
	}
	return marshalReflect(reflect.ValueOf(v), s)
}

// marshalNullable treats a null/v8 value as an option: absent when invalid,
// otherwise the wrapped payload.
func marshalNullable(valid bool, inner any, s Serializer) error {
	if !valid {
		return s.SerializeNil()
	}
	return s.SerializeSome(inner)
}

func marshalReflect(rv reflect.Value, s Serializer) error {
	switch rv.Kind() {
	case reflect.Invalid:
		return s.SerializeNil()
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return s.SerializeInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return s.SerializeUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return s.SerializeFloat(rv.Float())
	case reflect.String:
		return s.SerializeString(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return s.SerializeBytes(rv.Bytes())
		}
		return marshalSeq(rv, s)
	case reflect.Array:
		return marshalTuple(rv, s)
	case reflect.Map:
		return marshalMap(rv, s)
	case reflect.Struct:
		return marshalStruct(rv, s)
	case reflect.Pointer:
		if rv.IsNil() {
			return s.SerializeNil()
		}
		return s.SerializeSome(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return s.SerializeNil()
		}
		return Marshal(rv.Elem().Interface(), s)
	default:
		return ErrUnsupportedType
	}
}

func marshalSeq(rv reflect.Value, s Serializer) error {
	ss, err := s.SerializeSeq(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := ss.SerializeElement(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return ss.End()
}

func marshalTuple(rv reflect.Value, s Serializer) error {
	ss, err := s.SerializeTuple(rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if err := ss.SerializeElement(rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return ss.End()
}

func marshalMap(rv reflect.Value, s Serializer) error {
	ms, err := s.SerializeMap(rv.Len())
	if err != nil {
		return err
	}
	keys := rv.MapKeys()
	if rv.Type().Key().Kind() == reflect.String {
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	}
	for _, k := range keys {
		if err := ms.SerializeKey(k.Interface()); err != nil {
			return err
		}
		if err := ms.SerializeValue(rv.MapIndex(k).Interface()); err != nil {
			return err
		}
	}
	return ms.End()
}

type structField struct {
	name  string
	value any
}

// appendStructFields collects the serializable fields of a struct value,
// flattening anonymous embedded structs so their fields read as if declared
// on the parent.
func appendStructFields(fields []structField, rv reflect.Value) []structField {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("fluent")
		if tag == "-" {
			continue
		}
		fv := rv.Field(i)
		if sf.Anonymous && tag == "" {
			if fv.Kind() == reflect.Struct {
				fields = appendStructFields(fields, fv)
				continue
			}
			if fv.Kind() == reflect.Pointer && !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				fields = appendStructFields(fields, fv.Elem())
				continue
			}
		}
		name := sf.Name
		if tag != "" {
			if comma := strings.IndexByte(tag, ','); comma >= 0 {
				tag = tag[:comma]
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, structField{name: name, value: fv.Interface()})
	}
	return fields
}

func marshalStruct(rv reflect.Value, s Serializer) error {
	rt := rv.Type()
	fields := appendStructFields(nil, rv)
	if len(fields) == 0 {
		if rt.Name() == "" {
			return s.SerializeUnit()
		}
		return s.SerializeUnitStruct(rt.Name())
	}
	ss, err := s.SerializeStruct(rt.Name(), len(fields))
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := ss.SerializeField(f.name, f.value); err != nil {
			return err
		}
	}
	return ss.End()
}
