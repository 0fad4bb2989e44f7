package fluentser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The sub-serializers returned from rejected composite entry points must
// never be driven; doing so is a contract violation, not a recoverable
// error.
func TestUnsupported_MethodsPanic(t *testing.T) {
	ser := NewValueSerializer()

	seq, err := ser.SerializeSeq(3)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Panics(t, func() { _ = seq.SerializeElement(1) })
	assert.Panics(t, func() { _ = seq.End() })

	m, err := ser.SerializeMap(-1)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Panics(t, func() { _ = m.SerializeKey("k") })
	assert.Panics(t, func() { _ = m.SerializeValue("v") })

	st, err := ser.SerializeStruct("S", 1)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Panics(t, func() { _ = st.SerializeField("f", 1) })
}

func TestUnsupported_RejectedEntryPointsLeaveSlotEmpty(t *testing.T) {
	ser := NewValueSerializer()
	_, err := ser.SerializeTupleVariant("Pair", "Of", 2)
	require.ErrorIs(t, err, ErrUnsupportedType)

	// The failed call must not count as the single permitted write.
	require.NoError(t, ser.SerializeString("still usable"))
	assert.Equal(t, StringValue("still usable"), ser.Value())
}
