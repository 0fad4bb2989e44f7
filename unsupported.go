package fluentser

// unsupported backs the composite entry points that always fail. Those entry
// points must still return a usable sub-serializer value alongside the
// error; returning this singleton instead of nil turns a driver that ignores
// the error into a clear panic rather than a nil dereference. Its methods
// are unreachable through any correct driver.
type unsupported struct{}

var (
	_ SeqSerializer    = unsupported{}
	_ MapSerializer    = unsupported{}
	_ StructSerializer = unsupported{}
)

const unsupportedMsg = "fluentser: composite serializer used after the conversion already failed"

func (unsupported) SerializeElement(any) error { panic(unsupportedMsg) }

func (unsupported) SerializeKey(any) error { panic(unsupportedMsg) }

func (unsupported) SerializeValue(any) error { panic(unsupportedMsg) }

func (unsupported) SerializeField(string, any) error { panic(unsupportedMsg) }

func (unsupported) End() error { panic(unsupportedMsg) }
