package fluentser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs_InsertionOrder(t *testing.T) {
	args := NewArgs()
	args.Set("c", NumberValue(3))
	args.Set("a", NumberValue(1))
	args.Set("b", NumberValue(2))

	assert.Equal(t, []string{"c", "a", "b"}, args.Keys())
}

func TestArgs_OverwriteKeepsPosition(t *testing.T) {
	args := NewArgs()
	args.Set("a", NumberValue(1))
	args.Set("b", NumberValue(2))
	args.Set("a", StringValue("one"))

	require.Equal(t, 2, args.Len())
	assert.Equal(t, []string{"a", "b"}, args.Keys())

	v, ok := args.Get("a")
	require.True(t, ok)
	assert.Equal(t, StringValue("one"), v)
}

func TestArgs_GetMissing(t *testing.T) {
	args := NewArgs()
	v, ok := args.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, KindNone, v.Kind())
}

func TestArgs_ZeroValueUsable(t *testing.T) {
	var args Args
	args.Set("x", NumberValue(1))
	assert.Equal(t, 1, args.Len())
}

func TestArgs_TemplateData(t *testing.T) {
	args := NewArgs()
	args.Set("name", StringValue("Maria"))
	args.Set("count", NumberValue(4))
	args.Set("missing", NoneValue())

	data := args.TemplateData()
	assert.Equal(t, map[string]any{
		"name":    "Maria",
		"count":   4.0,
		"missing": nil,
	}, data)
}

func TestArgs_KeysIsACopy(t *testing.T) {
	args := NewArgs()
	args.Set("a", NumberValue(1))

	keys := args.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a"}, args.Keys())
}
