package natsort

import (
	"math/big"
	"strings"
	"unicode"
)

// Sequence is the ordered list of tokens produced from a single string.
// It is built once per input and never mutated afterwards, so it is safe to
// share across goroutines without synchronization.
type Sequence []Token

// Tokenize splits input into maximal runs of digits and non-digits.
// It is total: every string, including the empty one, yields a well-defined
// sequence, and no input is an error.
func Tokenize(input string) Sequence {
	var seq Sequence
	cur := newCursor(input)
	for !cur.eof() {
		r, _ := cur.peek()
		if unicode.IsDigit(r) {
			seq = append(seq, scanNumber(&cur))
		} else {
			seq = append(seq, scanLetters(&cur))
		}
	}
	return seq
}

// String reassembles the original input text.
func (s Sequence) String() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Equal reports structural equality: same length and structurally equal
// tokens at every position. Distinct from the numeric Equal outcome of
// Compare — Tokenize("007") and Tokenize("7") compare Equal but are not
// structurally equal.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !s[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

var bigTen = big.NewInt(10)

// scanNumber consumes the maximal digit run at the cursor and accumulates
// its magnitude. Arbitrary precision: a run of any length parses without
// overflow.
func scanNumber(cur *cursor) Token {
	start := cur.mark()
	value := new(big.Int)
	var digit big.Int
	for !cur.eof() {
		r, _ := cur.peek()
		if !unicode.IsDigit(r) {
			break
		}
		digit.SetInt64(digitValue(r))
		value.Mul(value, bigTen)
		value.Add(value, &digit)
		cur.bump()
	}
	sp := cur.spanFrom(start)
	return Token{Kind: Number, Span: sp, Text: cur.slice(sp), Value: value}
}

// scanLetters consumes the maximal non-digit run at the cursor.
func scanLetters(cur *cursor) Token {
	start := cur.mark()
	for !cur.eof() {
		r, _ := cur.peek()
		if unicode.IsDigit(r) {
			break
		}
		cur.bump()
	}
	sp := cur.spanFrom(start)
	return Token{Kind: Letters, Span: sp, Text: cur.slice(sp)}
}

// digitValue returns the decimal value of r, which must satisfy
// unicode.IsDigit. Every Nd block is a contiguous run of ten starting at its
// zero digit, so the value is the offset of r within its range table entry,
// modulo ten.
func digitValue(r rune) int64 {
	if '0' <= r && r <= '9' { // fast-path ASCII
		return int64(r - '0')
	}
	if r <= 0xFFFF {
		ranges := unicode.Nd.R16
		u := uint16(r)
		lo, hi := 0, len(ranges)
		for lo < hi {
			mid := (lo + hi) / 2
			switch rg := ranges[mid]; {
			case u < rg.Lo:
				hi = mid
			case u > rg.Hi:
				lo = mid + 1
			default:
				return int64((u - rg.Lo) / rg.Stride % 10)
			}
		}
		return 0
	}
	ranges := unicode.Nd.R32
	u := uint32(r)
	lo, hi := 0, len(ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		switch rg := ranges[mid]; {
		case u < rg.Lo:
			hi = mid
		case u > rg.Hi:
			lo = mid + 1
		default:
			return int64((u - rg.Lo) / rg.Stride % 10)
		}
	}
	return 0
}
