package json

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// Value is a tagged union over the seven JSON variants. Exactly one payload
// field is meaningful, selected by Kind. Values are immutable once built.
type Value struct {
	Kind Kind

	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Items  []Value
	Fields map[string]Value
}

func Null() Value {
	return Value{Kind: KindNull}
}

func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

func Int(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func Array(items ...Value) Value {
	return Value{Kind: KindArray, Items: items}
}

func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = make(map[string]Value)
	}
	return Value{Kind: KindObject, Fields: fields}
}
