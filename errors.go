package fluentser

import "errors"

// Serialization failures. Every failure is terminal for the current
// conversion call and is returned to the caller as-is; match with errors.Is.
// Failures raised inside the value being converted (for example by a
// Marshaler implementation) are propagated untouched and need no sentinel of
// their own.
var (
	// ErrUnsupportedType reports a value shape the target model cannot
	// represent.
	ErrUnsupportedType = errors.New("fluentser: this type is unsupported")

	// ErrAlreadyUsed reports a second write into a ValueSerializer, which
	// holds exactly one value.
	ErrAlreadyUsed = errors.New("fluentser: this serializer is already used")

	// ErrNonUTF8Bytes reports byte input that does not form a valid UTF-8
	// encoded string.
	ErrNonUTF8Bytes = errors.New("fluentser: input bytes do not form a valid UTF-8 encoded string")

	// ErrInvalidMapCall reports an invalid call sequence of map
	// serialization methods: a value with no pending key, a second key
	// before a value, or a map ended with a key still pending.
	ErrInvalidMapCall = errors.New("fluentser: invalid call sequence of map serialization methods")
)
