// Package fluentser converts arbitrary Go values into localization arguments.
//
// A localization message takes named arguments, each of which is a small
// scalar: a string, a number, or nothing at all. This package adapts any Go
// value onto that model through a visitor protocol: the value describes its
// own shape (directly, by implementing Marshaler, or indirectly, through the
// reflection driver Marshal or the JSON driver SerializeJSON) and a
// serializer builds the target representation.
//
// Basic Usage
//
//	ser := fluentser.NewArgsSerializer()
//	err := ser.Serialize(struct {
//	    Name string `fluent:"name"`
//	}{Name: "Maria"})
//	args := ser.Args()
//
// # Serializers
//
// Two serializers are provided:
//
//   - ValueSerializer produces a single Value from one scalar-shaped input.
//   - ArgsSerializer merges one or more map- or struct-shaped inputs into an
//     Args collection, overwriting duplicate keys. Driving the same
//     ArgsSerializer with several inputs unions their fields, which is how
//     independent sources of message arguments are combined.
//
// # Supported Shapes
//
// ValueSerializer accepts booleans (1.0 for true, 0.0 for false), all
// integer and float widths (converted to float64, lossy for very large
// integers), runes, strings, UTF-8 byte slices, nil and unit values, unit
// structs and variants (encoded as their names), and options or newtypes of
// supported shapes. Sequences, tuples, maps and structs are rejected with
// ErrUnsupportedType.
//
// ArgsSerializer accepts maps with string-convertible keys, structs and
// struct variants, and options or newtypes of those. Scalars, sequences and
// tuples at the top level are rejected with ErrUnsupportedType.
//
// # Struct Tags
//
// The reflection driver renames or skips struct fields via tags:
//
//	type Greeting struct {
//	    Name    string `fluent:"name"`
//	    Private string `fluent:"-"`   // never serialized
//	}
//
// # Errors
//
// Failures are terminal for the current conversion and are returned to the
// caller unwrapped; match them with errors.Is against the Err sentinels. A
// failed aggregate conversion may leave insertions from earlier fields in
// the Args, since insertion is immediate rather than buffered.
//
// # Localization
//
// The localize subpackage feeds the accumulated Args to a go-i18n bundle as
// template data.
package fluentser
