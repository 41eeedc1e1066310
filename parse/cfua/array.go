package cfua

// Arrayer is implemented by array builders accepted by Document.AppendArray.
type Arrayer interface {
	Finish() Value
}

// Element lists the Go types an ArrayBuilder can hold.
type Element interface {
	int64 | float64 | bool | string
}

// ArrayBuilder accumulates elements of a single type.
//
//	fib := cfua.NewIntegerArray().Push(1).Push(1).Push(2).Push(3)
//	doc.AppendArray("fibonacci", fib)
type ArrayBuilder[T Element] struct {
	elems []Value
}

type (
	IntegerArray = ArrayBuilder[int64]
	FloatArray   = ArrayBuilder[float64]
	BooleanArray = ArrayBuilder[bool]
	StringArray  = ArrayBuilder[string]
)

func NewArray[T Element]() *ArrayBuilder[T] {
	return &ArrayBuilder[T]{}
}

func NewIntegerArray() *IntegerArray { return NewArray[int64]() }

func NewFloatArray() *FloatArray { return NewArray[float64]() }

func NewBooleanArray() *BooleanArray { return NewArray[bool]() }

func NewStringArray() *StringArray { return NewArray[string]() }

// Push appends v to the end of the array.
func (a *ArrayBuilder[T]) Push(v T) *ArrayBuilder[T] {
	a.elems = append(a.elems, elementValue(v))
	return a
}

func (a *ArrayBuilder[T]) Len() int { return len(a.elems) }

func (a *ArrayBuilder[T]) Finish() Value {
	return Array(a.elems...)
}

func elementValue[T Element](v T) Value {
	switch x := any(v).(type) {
	case int64:
		return Integer(x)
	case float64:
		return Float(x)
	case bool:
		return Boolean(x)
	case string:
		return String(x)
	}
	return Value{}
}
