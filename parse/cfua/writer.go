package cfua

import (
	"bytes"
	"io"
	"strings"
)

// Marshal renders d as canonical CFUA text. Parsing the result yields a
// Document equal to d.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) MarshalText() ([]byte, error) {
	return Marshal(d)
}

// UnmarshalText replaces the contents of d with the parsed text.
func (d *Document) UnmarshalText(text []byte) error {
	parsed, err := Parse(text)
	if err != nil {
		return err
	}
	d.pairs = parsed.pairs
	return nil
}

// WriteTo writes canonical text to w. Nothing is written if any pair cannot
// be rendered.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, p := range d.pairs {
		if err := writePair(&b, p); err != nil {
			return 0, err
		}
	}
	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), IOError(err)
	}
	return int64(n), nil
}

func writePair(b *strings.Builder, p Pair) error {
	if !validName(p.Key) {
		return writeErrorf(KindInvalidName, "%s", p.Key)
	}
	if p.Value.typ == TypeSection {
		b.WriteByte('@')
		b.WriteString(p.Key)
		b.WriteByte('\n')
		return nil
	}

	b.WriteString(p.Key)
	b.WriteString(": ")
	switch p.Value.typ {
	case TypeInteger, TypeFloat, TypeBoolean:
		b.WriteString(p.Value.String())
	case TypeString:
		writeString(b, p.Value.s)
	case TypeArray:
		return writeArray(b, p.Key, p.Value.elems)
	default:
		return writeErrorf(KindUnsupportedValue, "%s: %s", p.Key, p.Value.typ)
	}
	b.WriteByte('\n')
	return nil
}

// writeString emits one '-prefixed line per fragment, without the final newline.
func writeString(b *strings.Builder, s string) {
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('\'')
		b.WriteString(line)
	}
}

func writeArray(b *strings.Builder, key string, elems []Value) error {
	hash := false
	for _, e := range elems {
		switch e.typ {
		case TypeInteger, TypeFloat, TypeBoolean:
		case TypeString:
			hash = true
		case TypeArray:
			return writeErrorf(KindNestedArray, "%s", key)
		default:
			return writeErrorf(KindUnsupportedValue, "%s: %s in array", key, e.typ)
		}
		if e.typ != elems[0].typ {
			return writeErrorf(KindMixedArrayType, "%s: %s after %s", key, e.typ, elems[0].typ)
		}
	}

	if !hash {
		b.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteString("]\n")
		return nil
	}

	b.WriteString("[\n")
	for _, e := range elems {
		b.WriteByte('#')
		writeString(b, e.s)
		b.WriteByte('\n')
	}
	b.WriteString("]\n")
	return nil
}
