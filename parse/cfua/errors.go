package cfua

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes an Error. There is one kind per grammar violation.
type Kind string

const (
	KindEmptyValue          Kind = "empty_value"
	KindNonGraphicChar      Kind = "non_graphic_char"
	KindInvalidChar         Kind = "invalid_char"
	KindInvalidKeyChar      Kind = "invalid_key_char"
	KindInvalidSectionChar  Kind = "invalid_section_char"
	KindLeadingHyphen       Kind = "leading_hyphen"
	KindUnknownKeyword      Kind = "unknown_keyword"
	KindNestedArray         Kind = "nested_array"
	KindMixedArrayType      Kind = "mixed_array_type"
	KindMixedArrayDecl      Kind = "mixed_array_decl"
	KindStringInSimpleArray Kind = "string_in_simple_array"
	KindInvalidArrayValue   Kind = "invalid_array_value"
	KindUnexpectedEOF       Kind = "unexpected_eof"
	KindCarriageReturn      Kind = "carriage_return"
	KindInvalidName         Kind = "invalid_name"
	KindUnsupportedValue    Kind = "unsupported_value"
	KindIO                  Kind = "io"
)

var kindMessages = map[Kind]string{
	KindEmptyValue:          "empty value",
	KindNonGraphicChar:      "non-graphic character after separator",
	KindInvalidChar:         "invalid character",
	KindInvalidKeyChar:      "invalid character in key",
	KindInvalidSectionChar:  "invalid character in section name",
	KindLeadingHyphen:       "name cannot start with a hyphen",
	KindUnknownKeyword:      "unknown keyword",
	KindNestedArray:         "nested arrays are not allowed",
	KindMixedArrayType:      "array elements must share one type",
	KindMixedArrayDecl:      "array mixes comma and hash element syntax",
	KindStringInSimpleArray: "strings are only allowed in hash arrays",
	KindInvalidArrayValue:   "invalid array value",
	KindUnexpectedEOF:       "unexpected end of input",
	KindCarriageReturn:      "CRLF line endings are not supported",
	KindInvalidName:         "invalid key or section name",
	KindUnsupportedValue:    "value cannot be written",
	KindIO:                  "i/o failure",
}

// Error is returned by Parse, Marshal and the file helpers built on them.
// Line and Col are 1-based and zero when the error has no source position.
type Error struct {
	Cause error
	Kind  Kind
	Text  string
	Line  int
	Col   int
	Char  rune
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cfua")
	if e.Line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Col))
	}
	b.WriteString(": ")
	if msg, ok := kindMessages[e.Kind]; ok {
		b.WriteString(msg)
	} else {
		b.WriteString(string(e.Kind))
	}
	if e.Char != 0 {
		b.WriteByte(' ')
		b.WriteString(strconv.QuoteRune(e.Char))
	}
	if e.Text != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.Text))
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is checks.
var (
	ErrEmptyValue          = &Error{Kind: KindEmptyValue}
	ErrNonGraphicChar      = &Error{Kind: KindNonGraphicChar}
	ErrInvalidChar         = &Error{Kind: KindInvalidChar}
	ErrInvalidKeyChar      = &Error{Kind: KindInvalidKeyChar}
	ErrInvalidSectionChar  = &Error{Kind: KindInvalidSectionChar}
	ErrLeadingHyphen       = &Error{Kind: KindLeadingHyphen}
	ErrUnknownKeyword      = &Error{Kind: KindUnknownKeyword}
	ErrNestedArray         = &Error{Kind: KindNestedArray}
	ErrMixedArrayType      = &Error{Kind: KindMixedArrayType}
	ErrMixedArrayDecl      = &Error{Kind: KindMixedArrayDecl}
	ErrStringInSimpleArray = &Error{Kind: KindStringInSimpleArray}
	ErrInvalidArrayValue   = &Error{Kind: KindInvalidArrayValue}
	ErrUnexpectedEOF       = &Error{Kind: KindUnexpectedEOF}
	ErrCarriageReturn      = &Error{Kind: KindCarriageReturn}
	ErrInvalidName         = &Error{Kind: KindInvalidName}
	ErrUnsupportedValue    = &Error{Kind: KindUnsupportedValue}
	ErrIO                  = &Error{Kind: KindIO}
)

// IOError wraps a read or write failure.
func IOError(cause error) error {
	return &Error{Kind: KindIO, Cause: cause}
}

func writeErrorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Text: fmt.Sprintf(format, args...)}
}
