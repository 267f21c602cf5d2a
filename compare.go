package natsort

import (
	"fmt"
	"strings"
)

// Ordering is the outcome of comparing two token sequences. The relation is
// a partial order: Incomparable is a legitimate result, not a failure.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
	// Incomparable means no ordering relation exists: the sequences diverge
	// at a position where one token is a digit run and the other is not.
	Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Incomparable:
		return "incomparable"
	default:
		return fmt.Sprintf("Ordering(%d)", int8(o))
	}
}

// Ordered reports whether o is one of the three total-order outcomes.
func (o Ordering) Ordered() bool {
	return o != Incomparable
}

// Compare computes the partial order between two sequences.
//
// Tokens are paired positionally up to the shorter length. Number pairs
// compare by magnitude, Letters pairs by code-point order. The first
// non-Equal pair decides the result; a Letters/Number pair terminates with
// Incomparable. When every examined pair is Equal the shorter sequence
// orders first.
func Compare(a, b Sequence) Ordering {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ta, tb := a[i], b[i]
		if ta.Kind != tb.Kind {
			return Incomparable
		}
		var cmp int
		if ta.Kind == Number {
			cmp = ta.Value.Cmp(tb.Value)
		} else {
			cmp = strings.Compare(ta.Text, tb.Text)
		}
		if cmp != 0 {
			return Ordering(cmp)
		}
	}
	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	default:
		return Equal
	}
}

// CompareStrings tokenizes both arguments and compares the results. Useful
// for callers who want to test orderability of two strings without sorting.
func CompareStrings(a, b string) Ordering {
	return Compare(Tokenize(a), Tokenize(b))
}
