package natsort

import (
	"fmt"
	"sort"
)

// UnorderableError reports a pair of strings whose token sequences have no
// ordering relation, encountered while sorting.
type UnorderableError struct {
	A, B string
}

func (e *UnorderableError) Error() string {
	return fmt.Sprintf("cannot order %q against %q: digit run meets non-digit run", e.A, e.B)
}

type keyedString struct {
	str string
	seq Sequence
}

// Sort orders strs in place under the natural ordering. Each string is
// tokenized exactly once. Every pair the underlying sort examines must
// resolve to Less, Equal, or Greater; if any pair is Incomparable, Sort
// returns an *UnorderableError naming the first such pair and leaves strs
// unchanged. Relative order of strings whose keys compare Equal is
// unspecified.
func Sort(strs []string) error {
	keyed := make([]keyedString, len(strs))
	for i, s := range strs {
		keyed[i] = keyedString{str: s, seq: Tokenize(s)}
	}

	var unorderable *UnorderableError
	sort.Slice(keyed, func(i, j int) bool {
		ord := Compare(keyed[i].seq, keyed[j].seq)
		if ord == Incomparable && unorderable == nil {
			unorderable = &UnorderableError{A: keyed[i].str, B: keyed[j].str}
		}
		return ord == Less
	})
	if unorderable != nil {
		return unorderable
	}

	for i := range keyed {
		strs[i] = keyed[i].str
	}
	return nil
}
