package fluentser

// ArgsSerializer converts composite self-describing values into an Args
// collection. It may be driven several times; each input's keys merge into
// the same collection, overwriting earlier entries of the same name.
//
//	ser := fluentser.NewArgsSerializer()
//	_ = ser.Serialize(map[string]any{"foo": 42})
//	_ = ser.Serialize(struct{ Bar string }{"baz"})
//	args := ser.Args() // foo=42, Bar="baz"
//
// Map keys must convert to strings; struct field names are used directly.
// Every value goes through a fresh ValueSerializer, so only scalar-shaped
// values are accepted inside the composite.
type ArgsSerializer struct {
	args *Args
}

// NewArgsSerializer returns a serializer accumulating into an empty Args.
func NewArgsSerializer() *ArgsSerializer {
	return &ArgsSerializer{args: NewArgs()}
}

// ArgsSerializerFrom returns a serializer that merges into an existing
// collection. A nil args starts empty.
func ArgsSerializerFrom(args *Args) *ArgsSerializer {
	if args == nil {
		args = NewArgs()
	}
	return &ArgsSerializer{args: args}
}

// Serialize drives v through the reflection driver into s.
func (s *ArgsSerializer) Serialize(v any) error {
	return Marshal(v, s)
}

// MergeJSON decodes a JSON document and merges its fields into s. The
// document must be an object (or null, which is a no-op).
func (s *ArgsSerializer) MergeJSON(data []byte) error {
	return SerializeJSON(data, s)
}

// Args releases the accumulated collection.
func (s *ArgsSerializer) Args() *Args {
	return s.args
}

// Scalars cannot supply named arguments, so every scalar method fails.

func (s *ArgsSerializer) SerializeBool(bool) error     { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeInt(int64) error     { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeUint(uint64) error   { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeFloat(float64) error { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeRune(rune) error     { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeString(string) error { return ErrUnsupportedType }
func (s *ArgsSerializer) SerializeBytes([]byte) error  { return ErrUnsupportedType }

// Absent and unit-shaped inputs contribute no arguments and succeed.

func (s *ArgsSerializer) SerializeNil() error                    { return nil }
func (s *ArgsSerializer) SerializeUnit() error                   { return nil }
func (s *ArgsSerializer) SerializeUnitStruct(string) error       { return nil }
func (s *ArgsSerializer) SerializeUnitVariant(_, _ string) error { return nil }

// Wrappers pass through: the inner value is expected to be composite again.

func (s *ArgsSerializer) SerializeSome(v any) error {
	return Marshal(v, s)
}

func (s *ArgsSerializer) SerializeNewtype(_ string, v any) error {
	return Marshal(v, s)
}

func (s *ArgsSerializer) SerializeNewtypeVariant(_, _ string, v any) error {
	return Marshal(v, s)
}

func (s *ArgsSerializer) SerializeSeq(int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ArgsSerializer) SerializeTuple(int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ArgsSerializer) SerializeTupleStruct(string, int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ArgsSerializer) SerializeTupleVariant(string, string, int) (SeqSerializer, error) {
	return unsupported{}, ErrUnsupportedType
}

func (s *ArgsSerializer) SerializeMap(int) (MapSerializer, error) {
	return &serMap{args: s.args}, nil
}

func (s *ArgsSerializer) SerializeStruct(string, int) (StructSerializer, error) {
	return &serStruct{args: s.args}, nil
}

func (s *ArgsSerializer) SerializeStructVariant(string, string, int) (StructSerializer, error) {
	return &serStruct{args: s.args}, nil
}

var _ Serializer = (*ArgsSerializer)(nil)

// serMap inserts map entries. A key must be pending before each value and
// consumed by it; every other ordering fails with ErrInvalidMapCall.
type serMap struct {
	args       *Args
	pendingKey *string
}

func (m *serMap) SerializeKey(k any) error {
	ser := NewValueSerializer()
	if err := Marshal(k, ser); err != nil {
		return err
	}
	v := ser.Value()
	if v.Kind() != KindString {
		return ErrUnsupportedType
	}
	if m.pendingKey != nil {
		return ErrInvalidMapCall
	}
	key := v.Text()
	m.pendingKey = &key
	return nil
}

func (m *serMap) SerializeValue(v any) error {
	if m.pendingKey == nil {
		return ErrInvalidMapCall
	}
	ser := NewValueSerializer()
	if err := Marshal(v, ser); err != nil {
		return err
	}
	m.args.Set(*m.pendingKey, ser.Value())
	m.pendingKey = nil
	return nil
}

func (m *serMap) End() error {
	if m.pendingKey != nil {
		return ErrInvalidMapCall
	}
	return nil
}

// serStruct inserts struct fields; names arrive from the protocol, so no
// pending-key bookkeeping is needed.
type serStruct struct {
	args *Args
}

func (f *serStruct) SerializeField(name string, v any) error {
	ser := NewValueSerializer()
	if err := Marshal(v, ser); err != nil {
		return err
	}
	f.args.Set(name, ser.Value())
	return nil
}

func (f *serStruct) End() error {
	return nil
}
