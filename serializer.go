package fluentser

// Serializer is the visitor side of the self-describing value protocol.
// Exactly one method is invoked per value, chosen by the value's runtime
// shape. Scalar methods either record a converted value or fail; composite
// methods hand back a sub-serializer that receives the elements, entries or
// fields one by one, followed by End.
//
// Length arguments carry the element count when it is known up front, or -1
// when it is not.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeInt(v int64) error
	SerializeUint(v uint64) error
	SerializeFloat(v float64) error
	SerializeRune(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeNil records an absent value, SerializeUnit a value that
	// carries no data at all.
	SerializeNil() error
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name, variant string) error

	// SerializeSome unwraps a present optional; the inner value is driven
	// through the same serializer. Newtype wrappers behave the same way.
	SerializeSome(v any) error
	SerializeNewtype(name string, v any) error
	SerializeNewtypeVariant(name, variant string, v any) error

	SerializeSeq(n int) (SeqSerializer, error)
	SerializeTuple(n int) (SeqSerializer, error)
	SerializeTupleStruct(name string, n int) (SeqSerializer, error)
	SerializeTupleVariant(name, variant string, n int) (SeqSerializer, error)
	SerializeMap(n int) (MapSerializer, error)
	SerializeStruct(name string, n int) (StructSerializer, error)
	SerializeStructVariant(name, variant string, n int) (StructSerializer, error)
}

// SeqSerializer receives the elements of a sequence or tuple in order.
type SeqSerializer interface {
	SerializeElement(v any) error
	End() error
}

// MapSerializer receives the entries of a map. Each entry arrives as a
// SerializeKey call followed by a SerializeValue call; any other ordering is
// a protocol violation.
type MapSerializer interface {
	SerializeKey(k any) error
	SerializeValue(v any) error
	End() error
}

// StructSerializer receives the fields of a struct or struct variant as
// (static name, value) pairs.
type StructSerializer interface {
	SerializeField(name string, v any) error
	End() error
}

// Marshaler is implemented by values that present their own shape to a
// Serializer instead of being walked by reflection. An implementation must
// invoke exactly one Serializer method.
type Marshaler interface {
	MarshalFluent(s Serializer) error
}
