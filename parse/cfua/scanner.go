package cfua

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// =========================
// Public API
// =========================

// Parse parses CFUA text into a Document. Parsing stops at the first error,
// which is always an *Error.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return ParseString(string(data), opts...)
}

// ParseString is Parse for text already held in a string.
func ParseString(text string, opts ...Option) (*Document, error) {
	s := &scanner{
		opts: newOptions(opts),
		doc:  New(),
		line: 1,
	}

	for i, c := range text {
		s.col++
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return nil, s.errChar(KindInvalidChar, c)
			}
		}
		if c == '\r' && strings.HasPrefix(text[i+1:], "\n") && !s.inText() {
			return nil, s.errChar(KindCarriageReturn, c)
		}
		if err := s.step(c); err != nil {
			return nil, err
		}
		if c == '\n' {
			s.line++
			s.col = 0
		}
	}

	if err := s.finish(); err != nil {
		return nil, err
	}

	Logger().Debug("parsed cfua document",
		zap.Int("pairs", s.doc.Len()),
		zap.Int("lines", s.line))
	return s.doc, nil
}

// Read buffers all of r and parses it.
func Read(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, IOError(err)
	}
	return Parse(data, opts...)
}

// =========================
// State Machine
// =========================

type state uint8

const (
	stateReading state = iota
	stateKey
	stateSeparator
	stateValue
	stateArraySimple
	stateArrayElement
	stateSectionName
	stateComment
	stateArrayEnd
)

func (s state) String() string {
	switch s {
	case stateReading:
		return "reading"
	case stateKey:
		return "key"
	case stateSeparator:
		return "separator"
	case stateValue:
		return "value"
	case stateArraySimple:
		return "simple array"
	case stateArrayElement:
		return "hash array"
	case stateSectionName:
		return "section name"
	case stateComment:
		return "comment"
	case stateArrayEnd:
		return "array end"
	}
	return "unknown"
}

// valueClass is inferred from the first character of a scalar value.
type valueClass uint8

const (
	classNone valueClass = iota
	classString
	classNumber
	classOther
)

// slot tracks progress through one line of a hash array.
type slot uint8

const (
	slotLineStart slot = iota // expecting '#', ']' or a string continuation
	slotOpen                  // after '#'
	slotContent               // inside an element
)

type scanner struct {
	opts  options
	doc   *Document
	state state
	line  int
	col   int

	name strings.Builder // key or section name being read
	key  string          // key awaiting its value

	class         valueClass
	value         strings.Builder
	pendingString bool // a string value may continue on the next line

	elems       []Value
	elem        strings.Builder
	elemOpen    bool // simple array: element has content
	elemString  bool // hash array: element is a string
	slot        slot
	pendingElem bool // hash array: string element may continue on the next line
}

func (s *scanner) step(c rune) error {
	switch s.state {
	case stateReading:
		return s.reading(c)
	case stateKey:
		return s.keyChar(c)
	case stateSeparator:
		return s.separator(c)
	case stateValue:
		return s.valueChar(c)
	case stateArraySimple:
		return s.arraySimple(c)
	case stateArrayElement:
		return s.arrayElement(c)
	case stateSectionName:
		return s.sectionName(c)
	case stateComment:
		if c == '\n' {
			s.state = stateReading
		}
		return nil
	case stateArrayEnd:
		if c != '\n' {
			return s.errChar(KindInvalidChar, c)
		}
		s.state = stateReading
		return nil
	}
	return s.errChar(KindInvalidChar, c)
}

func (s *scanner) reading(c rune) error {
	if s.pendingString {
		if c == '\'' {
			s.value.WriteByte('\n')
			s.pendingString = false
			s.state = stateValue
			return nil
		}
		if err := s.commitValue(); err != nil {
			return err
		}
	}

	switch {
	case c == '\n':
	case c == '%':
		s.state = stateComment
	case c == '@':
		s.name.Reset()
		s.state = stateSectionName
	case isNameStart(c):
		s.name.Reset()
		s.name.WriteRune(c)
		s.state = stateKey
	case c == '-':
		return s.errChar(KindLeadingHyphen, c)
	default:
		return s.errChar(KindInvalidChar, c)
	}
	return nil
}

func (s *scanner) keyChar(c rune) error {
	switch {
	case isNameChar(c):
		s.name.WriteRune(c)
	case c == ':':
		s.key = s.name.String()
		s.name.Reset()
		s.state = stateSeparator
	default:
		return s.errChar(KindInvalidKeyChar, c)
	}
	return nil
}

func (s *scanner) separator(c rune) error {
	switch {
	case c == ' ':
		return nil
	case c == '\n':
		return s.errText(KindEmptyValue, s.key)
	case unicode.IsGraphic(c):
		s.state = stateValue
		return s.valueChar(c)
	}
	return s.errChar(KindNonGraphicChar, c)
}

func (s *scanner) valueChar(c rune) error {
	if s.class == classNone {
		switch {
		case c == '\n':
			return s.errText(KindEmptyValue, s.key)
		case c == '\'':
			s.class = classString
			return nil
		case c == '[':
			s.resetArray()
			s.state = stateArraySimple
			return nil
		case isNumberStart(c):
			s.class = classNumber
		default:
			s.class = classOther
		}
		s.value.WriteRune(c)
		return nil
	}

	if c != '\n' {
		s.value.WriteRune(c)
		return nil
	}
	s.state = stateReading
	if s.class == classString {
		s.pendingString = true
		return nil
	}
	return s.commitValue()
}

func (s *scanner) arraySimple(c rune) error {
	if !s.elemOpen {
		switch c {
		case ' ':
			return nil
		case '\n', '#':
			if len(s.elems) > 0 {
				if c == '#' {
					return s.errChar(KindMixedArrayDecl, c)
				}
				return s.errChar(KindInvalidChar, c)
			}
			s.state = stateArrayElement
			s.slot = slotLineStart
			if c == '#' {
				return s.arrayElement(c)
			}
			return nil
		case ']':
			if len(s.elems) > 0 {
				return s.errText(KindInvalidArrayValue, "")
			}
			return s.commitArray()
		case ',':
			return s.errText(KindInvalidArrayValue, "")
		case '\'':
			return s.errChar(KindStringInSimpleArray, c)
		case '[':
			return s.errChar(KindNestedArray, c)
		}
		s.elemOpen = true
		s.elem.WriteRune(c)
		return nil
	}

	switch c {
	case ',':
		return s.commitElement()
	case ']':
		if err := s.commitElement(); err != nil {
			return err
		}
		return s.commitArray()
	case '[':
		return s.errChar(KindNestedArray, c)
	case '#':
		return s.errChar(KindMixedArrayDecl, c)
	case '\'':
		return s.errChar(KindStringInSimpleArray, c)
	case '\n':
		return s.errChar(KindInvalidChar, c)
	}
	s.elem.WriteRune(c)
	return nil
}

func (s *scanner) arrayElement(c rune) error {
	switch s.slot {
	case slotLineStart:
		if s.pendingElem {
			switch c {
			case '\'':
				s.elem.WriteByte('\n')
				s.pendingElem = false
				s.slot = slotContent
				return nil
			case '#', ']', '\n':
				if err := s.commitElement(); err != nil {
					return err
				}
			default:
				return s.errChar(KindInvalidChar, c)
			}
		}
		switch c {
		case '\n':
			return nil
		case '#':
			s.slot = slotOpen
			return nil
		case ']':
			return s.commitArray()
		case ',':
			return s.errChar(KindMixedArrayDecl, c)
		case '[':
			return s.errChar(KindNestedArray, c)
		}
		return s.errChar(KindInvalidChar, c)

	case slotOpen:
		switch {
		case c == '\'':
			s.elemString = true
			s.slot = slotContent
			return nil
		case c == '\n', c == ']':
			return s.errText(KindInvalidArrayValue, "")
		case c == '[':
			return s.errChar(KindNestedArray, c)
		case c == '#', c == ',', c == ' ', !unicode.IsGraphic(c):
			return s.errChar(KindInvalidChar, c)
		}
		s.elem.WriteRune(c)
		s.slot = slotContent
		return nil
	}

	if c == '\n' {
		s.slot = slotLineStart
		if s.elemString {
			s.pendingElem = true
			return nil
		}
		return s.commitElement()
	}
	if !s.elemString {
		switch c {
		case ']':
			if err := s.commitElement(); err != nil {
				return err
			}
			return s.commitArray()
		case ',':
			return s.errChar(KindMixedArrayDecl, c)
		case '[':
			return s.errChar(KindNestedArray, c)
		}
	}
	s.elem.WriteRune(c)
	return nil
}

func (s *scanner) sectionName(c rune) error {
	switch {
	case isNameStart(c):
		s.name.WriteRune(c)
	case c == '-':
		if s.name.Len() == 0 {
			return s.errChar(KindLeadingHyphen, c)
		}
		s.name.WriteRune(c)
	case c == '\n' && s.name.Len() > 0:
		s.commitSection()
	default:
		return s.errChar(KindInvalidSectionChar, c)
	}
	return nil
}

// finish applies the end-of-input policy. Unterminated keys and arrays always
// fail; a dangling value or section name is committed unless strictEOF is set.
func (s *scanner) finish() error {
	strict := s.opts.strictEOF
	switch s.state {
	case stateReading:
		if s.pendingString {
			return s.commitValue()
		}
		return nil
	case stateComment, stateArrayEnd:
		if !strict {
			return nil
		}
	case stateValue:
		if s.class != classNone && !strict {
			return s.commitValue()
		}
	case stateSectionName:
		if s.name.Len() > 0 && !strict {
			s.commitSection()
			return nil
		}
	}
	return s.errText(KindUnexpectedEOF, "inside "+s.state.String())
}

// =========================
// Commit Helpers
// =========================

func (s *scanner) commitValue() error {
	text := s.value.String()
	var v Value
	switch s.class {
	case classString:
		v = String(text)
	case classNumber:
		r, err := resolveLiteral(text)
		if err != nil {
			return s.errText(KindUnknownKeyword, text)
		}
		v = r
	default:
		r, ok := resolveKeyword(text)
		if !ok {
			return s.errText(KindUnknownKeyword, text)
		}
		v = r
	}
	s.doc.Append(s.key, v)
	s.resetValue()
	return nil
}

func (s *scanner) commitElement() error {
	var v Value
	if s.elemString {
		v = String(s.elem.String())
	} else {
		text := strings.TrimRight(s.elem.String(), " ")
		r, err := resolveLiteral(text)
		if err != nil {
			return s.errText(KindInvalidArrayValue, text)
		}
		v = r
	}
	if len(s.elems) > 0 && s.elems[0].typ != v.typ {
		return s.errText(KindMixedArrayType, fmt.Sprintf("%s after %s", v.typ, s.elems[0].typ))
	}
	s.elems = append(s.elems, v)
	s.elem.Reset()
	s.elemOpen = false
	s.elemString = false
	s.pendingElem = false
	return nil
}

func (s *scanner) commitArray() error {
	s.doc.Append(s.key, Array(s.elems...))
	s.resetArray()
	s.resetValue()
	s.state = stateArrayEnd
	return nil
}

// inText reports whether c would land in string payload or a comment, where
// a carriage return is kept as content.
func (s *scanner) inText() bool {
	switch s.state {
	case stateComment:
		return true
	case stateValue:
		return s.class == classString
	case stateArrayElement:
		return s.slot == slotContent && s.elemString
	}
	return false
}

func (s *scanner) commitSection() {
	s.doc.AppendSection(s.name.String())
	s.name.Reset()
	s.state = stateReading
}

func (s *scanner) resetValue() {
	s.key = ""
	s.class = classNone
	s.value.Reset()
	s.pendingString = false
}

func (s *scanner) resetArray() {
	s.elems = nil
	s.elem.Reset()
	s.elemOpen = false
	s.elemString = false
	s.slot = slotLineStart
	s.pendingElem = false
}

func (s *scanner) errChar(kind Kind, c rune) error {
	return &Error{Kind: kind, Line: s.line, Col: s.col, Char: c}
}

func (s *scanner) errText(kind Kind, text string) error {
	return &Error{Kind: kind, Line: s.line, Col: s.col, Text: text}
}

func isNumberStart(c rune) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == 'b' || c == 'h' || c == 'o'
}
