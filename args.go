package fluentser

// Args is an insertion-ordered collection of named localization arguments.
// Keys are unique; setting an existing key overwrites its value in place and
// keeps its original position. The zero Args is empty and ready to use.
type Args struct {
	keys   []string
	index  map[string]int
	values []Value
}

// NewArgs returns an empty argument collection.
func NewArgs() *Args {
	return &Args{}
}

// Set inserts or overwrites the value for key. Last write wins.
func (a *Args) Set(key string, v Value) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[key]; ok {
		a.values[i] = v
		return
	}
	a.index[key] = len(a.keys)
	a.keys = append(a.keys, key)
	a.values = append(a.values, v)
}

// Get returns the value stored for key.
func (a *Args) Get(key string) (Value, bool) {
	i, ok := a.index[key]
	if !ok {
		return Value{}, false
	}
	return a.values[i], true
}

// Len returns the number of stored arguments.
func (a *Args) Len() int {
	return len(a.keys)
}

// Keys returns the argument names in insertion order.
func (a *Args) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// TemplateData returns the arguments in the map form a message engine such
// as go-i18n consumes: string, float64, or nil per entry.
func (a *Args) TemplateData() map[string]any {
	data := make(map[string]any, len(a.keys))
	for i, k := range a.keys {
		data[k] = a.values[i].Interface()
	}
	return data
}
