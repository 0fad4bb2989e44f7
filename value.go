package fluentser

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindNumber
)

// NumberOptions controls how a numeric Value is rendered for display.
type NumberOptions struct {
	UseGrouping           bool
	MinimumFractionDigits int
	MaximumFractionDigits int // negative means no limit
}

// DefaultNumberOptions returns the options applied to numbers that were
// constructed without explicit formatting choices.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{
		UseGrouping:           true,
		MinimumFractionDigits: 0,
		MaximumFractionDigits: -1,
	}
}

// Value is one localization argument: a string, a number, or nothing.
// Values are immutable once constructed. The zero Value is KindNone.
type Value struct {
	kind Kind
	str  string
	num  float64
	opts NumberOptions
}

// StringValue returns a Value holding its own copy of s.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue returns a numeric Value with default formatting options.
func NumberValue(f float64) Value {
	return NumberValueWith(f, DefaultNumberOptions())
}

// NumberValueWith returns a numeric Value with explicit formatting options.
func NumberValueWith(f float64, opts NumberOptions) Value {
	return Value{kind: KindNumber, num: f, opts: opts}
}

// NoneValue returns the absent Value.
func NoneValue() Value {
	return Value{}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload. It is empty unless Kind is KindString.
func (v Value) Text() string { return v.str }

// Num returns the numeric payload. It is zero unless Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// Options returns the formatting options of a numeric Value.
func (v Value) Options() NumberOptions { return v.opts }

// Interface returns the Go representation used as message template data:
// string for KindString, float64 for KindNumber, nil for KindNone.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

// Format renders v for the given language. Strings are returned verbatim,
// KindNone renders empty, and numbers are formatted per the Value's
// NumberOptions using the locale's digit grouping and decimal separators.
func (v Value) Format(tag language.Tag) string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if !v.opts.UseGrouping {
			return strconv.FormatFloat(v.num, 'f', -1, 64)
		}
		fopts := []number.Option{number.MinFractionDigits(v.opts.MinimumFractionDigits)}
		if v.opts.MaximumFractionDigits >= 0 {
			fopts = append(fopts, number.MaxFractionDigits(v.opts.MaximumFractionDigits))
		}
		return message.NewPrinter(tag).Sprint(number.Decimal(v.num, fopts...))
	default:
		return ""
	}
}

// MarshalFluent presents the Value's own shape to a Serializer, so an
// already-converted Value can be fed back through either serializer.
func (v Value) MarshalFluent(s Serializer) error {
	switch v.kind {
	case KindString:
		return s.SerializeString(v.str)
	case KindNumber:
		return s.SerializeFloat(v.num)
	default:
		return s.SerializeNil()
	}
}
