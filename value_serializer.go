package fluentser

import "unicode/utf8"

// ValueSerializer converts one self-describing value into a single Value.
// The slot holds exactly one result: a second write fails with
// ErrAlreadyUsed, so each conversion needs a fresh instance.
//
//	ser := fluentser.NewValueSerializer()
//	if err := fluentser.Marshal("foo", ser); err != nil { ... }
//	v := ser.Value() // StringValue("foo")
//
// See also ArgsSerializer, which uses a ValueSerializer for every map key,
// map value and struct field it converts.
type ValueSerializer struct {
	value Value
	used  bool
}

// NewValueSerializer returns an empty single-value serializer.
func NewValueSerializer() *ValueSerializer {
	return &ValueSerializer{}
}

// Value returns the converted result. Before any successful write it returns
// the absent Value.
func (s *ValueSerializer) Value() Value {
	return s.value
}

func (s *ValueSerializer) store(v Value) error {
	if s.used {
		return ErrAlreadyUsed
	}
	s.used = true
	s.value = v
	return nil
}

// SerializeBool records 1.0 for true and 0.0 for false.
func (s *ValueSerializer) SerializeBool(v bool) error {
	num := 0.0
	if v {
		num = 1.0
	}
	return s.store(NumberValue(num))
}

// SerializeInt records the integer as a float64. The conversion is lossy for
// magnitudes beyond 2^53; the precision loss is accepted rather than
// reported.
func (s *ValueSerializer) SerializeInt(v int64) error {
	return s.store(NumberValue(float64(v)))
}

// SerializeUint records the integer as a float64, lossy like SerializeInt.
func (s *ValueSerializer) SerializeUint(v uint64) error {
	return s.store(NumberValue(float64(v)))
}

func (s *ValueSerializer) SerializeFloat(v float64) error {
	return s.store(NumberValue(v))
}

// SerializeRune records the character's text form.
func (s *ValueSerializer) SerializeRune(v rune) error {
	return s.SerializeString(string(v))
}

func (s *ValueSerializer) SerializeString(v string) error {
	return s.store(StringValue(v))
}

// SerializeBytes records the UTF-8 decoding of v, or fails with
// ErrNonUTF8Bytes.
func (s *ValueSerializer) SerializeBytes(v []byte) error {
	if !utf8.Valid(v) {
		return ErrNonUTF8Bytes
	}
	return s.SerializeString(string(v))
}

func (s *ValueSerializer) SerializeNil() error {
	return s.store(NoneValue())
}

func (s *ValueSerializer) SerializeUnit() error {
	return s.store(NoneValue())
}

// SerializeUnitStruct records the type's name.
func (s *ValueSerializer) SerializeUnitStruct(name string) error {
	return s.store(StringValue(name))
}

// SerializeUnitVariant records the variant's name.
func (s *ValueSerializer) SerializeUnitVariant(_, variant string) error {
	return s.store(StringValue(variant))
}

func (s *ValueSerializer) SerializeSome(v any) error {
	return Marshal(v, s)
}

func (s *ValueSerializer) SerializeNewtype(_ string, v any) error {
	return Marshal(v, s)
}

func (s *ValueSerializer) SerializeNewtypeVariant(_, _ string, v any) error {
	return Marshal(v, s)
}

func (s *ValueSerializer) SerializeSeq(int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeTuple(int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeTupleStruct(string, int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeTupleVariant(string, string, int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeMap(int) (MapSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeStruct(string, int) (StructSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ValueSerializer) SerializeStructVariant(string, string, int) (StructSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

var _ Serializer = (*ValueSerializer)(nil)
