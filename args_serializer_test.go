package fluentser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fooArgs struct {
	Foo int32 `fluent:"foo"`
}

type barArgs struct {
	Bar string `fluent:"bar"`
}

func TestArgsSerializer_Struct(t *testing.T) {
	ser := NewArgsSerializer()
	require.NoError(t, ser.Serialize(fooArgs{Foo: 42}))

	args := ser.Args()
	require.Equal(t, 1, args.Len())

	v, ok := args.Get("foo")
	require.True(t, ok)
	assert.Equal(t, NumberValue(42), v)
}

func TestArgsSerializer_MergeAcrossCalls(t *testing.T) {
	ser := NewArgsSerializer()
	require.NoError(t, ser.Serialize(map[string]any{"foo": 42}))
	require.NoError(t, ser.Serialize(map[string]any{"bar": "baz"}))

	args := ser.Args()
	require.Equal(t, 2, args.Len())
	assert.Equal(t, []string{"foo", "bar"}, args.Keys())

	foo, ok := args.Get("foo")
	require.True(t, ok)
	assert.Equal(t, NumberValue(42), foo)

	bar, ok := args.Get("bar")
	require.True(t, ok)
	assert.Equal(t, StringValue("baz"), bar)
}

func TestArgsSerializer_MergeStructs(t *testing.T) {
	ser := NewArgsSerializer()
	require.NoError(t, ser.Serialize(fooArgs{Foo: 42}))
	require.NoError(t, ser.Serialize(barArgs{Bar: "bar"}))

	args := ser.Args()
	assert.Equal(t, []string{"foo", "bar"}, args.Keys())
}

func TestArgsSerializer_LastWriteWins(t *testing.T) {
	ser := NewArgsSerializer()
	require.NoError(t, ser.Serialize(map[string]any{"foo": 1}))
	require.NoError(t, ser.Serialize(map[string]any{"foo": "two"}))

	args := ser.Args()
	require.Equal(t, 1, args.Len())

	v, ok := args.Get("foo")
	require.True(t, ok)
	assert.Equal(t, StringValue("two"), v)
}

func TestArgsSerializer_Seeded(t *testing.T) {
	seed := NewArgs()
	seed.Set("foo", StringValue("old"))
	seed.Set("keep", NumberValue(7))

	ser := ArgsSerializerFrom(seed)
	require.NoError(t, ser.Serialize(map[string]any{"foo": "new"}))

	args := ser.Args()
	assert.Same(t, seed, args)
	assert.Equal(t, []string{"foo", "keep"}, args.Keys())

	v, _ := args.Get("foo")
	assert.Equal(t, StringValue("new"), v)
}

func TestArgsSerializer_FromNil(t *testing.T) {
	ser := ArgsSerializerFrom(nil)
	require.NoError(t, ser.Serialize(fooArgs{Foo: 1}))
	assert.Equal(t, 1, ser.Args().Len())
}

func TestArgsSerializer_TopLevelWrappers(t *testing.T) {
	ser := NewArgsSerializer()

	// Absent input is a successful no-op.
	require.NoError(t, ser.Serialize(nil))
	var absent *fooArgs
	require.NoError(t, ser.Serialize(absent))
	assert.Equal(t, 0, ser.Args().Len())

	// An option around a composite merges the inner value.
	require.NoError(t, ser.Serialize(&fooArgs{Foo: 3}))
	v, ok := ser.Args().Get("foo")
	require.True(t, ok)
	assert.Equal(t, NumberValue(3), v)
}

func TestArgsSerializer_RejectsScalarsAndSequences(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"bool", true},
		{"int", 42},
		{"string", "foo"},
		{"bytes", []byte("foo")},
		{"sequence", []int{1, 2, 3}},
		{"tuple", [2]int{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ser := NewArgsSerializer()
			err := ser.Serialize(tc.in)
			require.ErrorIs(t, err, ErrUnsupportedType)
		})
	}
}

func TestArgsSerializer_NonStringMapKey(t *testing.T) {
	ser := NewArgsSerializer()
	err := ser.Serialize(map[int]string{1: "x"})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestArgsSerializer_NestedCompositeValue(t *testing.T) {
	ser := NewArgsSerializer()
	err := ser.Serialize(map[string]any{"nested": map[string]any{"inner": 1}})
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestArgsSerializer_FailureLeavesEarlierInsertions(t *testing.T) {
	// Insertion is immediate, not buffered: fields converted before the
	// failing one remain in the collection.
	ser := NewArgsSerializer()
	err := ser.Serialize(struct {
		A string
		B []int
	}{A: "kept", B: []int{1}})
	require.ErrorIs(t, err, ErrUnsupportedType)

	v, ok := ser.Args().Get("A")
	require.True(t, ok)
	assert.Equal(t, StringValue("kept"), v)
}

func TestSerMap_KeyTwiceInARow(t *testing.T) {
	ser := NewArgsSerializer()
	m, err := ser.SerializeMap(-1)
	require.NoError(t, err)

	require.NoError(t, m.SerializeKey("a"))
	err = m.SerializeKey("b")
	require.ErrorIs(t, err, ErrInvalidMapCall)
}

func TestSerMap_ValueWithoutKey(t *testing.T) {
	ser := NewArgsSerializer()
	m, err := ser.SerializeMap(-1)
	require.NoError(t, err)

	err = m.SerializeValue(42)
	require.ErrorIs(t, err, ErrInvalidMapCall)
}

func TestSerMap_EndWithPendingKey(t *testing.T) {
	ser := NewArgsSerializer()
	m, err := ser.SerializeMap(-1)
	require.NoError(t, err)

	require.NoError(t, m.SerializeKey("dangling"))
	err = m.End()
	require.ErrorIs(t, err, ErrInvalidMapCall)
}

func TestSerMap_WellFormedSequence(t *testing.T) {
	ser := NewArgsSerializer()
	m, err := ser.SerializeMap(1)
	require.NoError(t, err)

	require.NoError(t, m.SerializeKey("k"))
	require.NoError(t, m.SerializeValue("v"))
	require.NoError(t, m.End())

	v, ok := ser.Args().Get("k")
	require.True(t, ok)
	assert.Equal(t, StringValue("v"), v)
}

func TestStructVariant_FieldsInsertDirectly(t *testing.T) {
	ser := NewArgsSerializer()
	sv, err := ser.SerializeStructVariant("Event", "Created", 2)
	require.NoError(t, err)

	require.NoError(t, sv.SerializeField("id", 7))
	require.NoError(t, sv.SerializeField("kind", "audit"))
	require.NoError(t, sv.End())

	assert.Equal(t, []string{"id", "kind"}, ser.Args().Keys())
}

func TestArgsSerializer_MergeJSON(t *testing.T) {
	ser := NewArgsSerializer()
	require.NoError(t, ser.MergeJSON([]byte(`{"bar": "baz", "foo": 42, "gone": null}`)))

	args := ser.Args()
	require.Equal(t, 3, args.Len())

	foo, _ := args.Get("foo")
	assert.Equal(t, NumberValue(42), foo)

	bar, _ := args.Get("bar")
	assert.Equal(t, StringValue("baz"), bar)

	gone, ok := args.Get("gone")
	require.True(t, ok)
	assert.Equal(t, KindNone, gone.Kind())
}
