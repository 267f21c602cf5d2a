package natsort

import (
	"fmt"
	"math/big"
)

// Kind represents the category of a token within a tokenized string.
type Kind uint8

const (
	// Letters is a maximal run of non-digit characters.
	Letters Kind = iota
	// Number is a maximal run of Unicode decimal digits.
	Number
)

func (k Kind) String() string {
	switch k {
	case Letters:
		return "Letters"
	case Number:
		return "Number"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Span locates a token within its input string.
type Span struct {
	Start uint32 // in bytes, inclusive
	End   uint32 // in bytes, exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Token is a single run of the input: either a Letters run carrying its text
// verbatim, or a Number run additionally carrying the parsed magnitude.
type Token struct {
	Kind  Kind
	Span  Span
	Text  string
	Value *big.Int // non-nil iff Kind == Number; leading zeros do not affect it
}

// Equal reports structural equality: same kind and same verbatim text.
// Number tokens with equal magnitude but different text ("7" vs "007") are
// structurally unequal.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("Number(%s)", t.Value)
	}
	return fmt.Sprintf("Letters(%q)", t.Text)
}
