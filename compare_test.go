package natsort_test

import (
	"testing"

	"natsort"
)

func TestCompareStrings(t *testing.T) {
	cases := []struct {
		a, b string
		want natsort.Ordering
	}{
		{"aaa", "aaa", natsort.Equal},
		{"aaa", "aab", natsort.Less},
		{"aab", "aaa", natsort.Greater},
		{"aaa", "aa", natsort.Greater},

		{"111", "111", natsort.Equal},
		{"111", "112", natsort.Less},
		{"112", "111", natsort.Greater},

		{"a1", "a1", natsort.Equal},
		{"a1", "a2", natsort.Less},
		{"a2", "a1", natsort.Greater},

		// second token pair decides it
		{"1a2", "1b1", natsort.Less},

		// kind mismatch at the first pair
		{"1", "a", natsort.Incomparable},
		{"a", "1", natsort.Incomparable},

		// magnitude beats digit count
		{"file2", "file11", natsort.Less},
		{"2", "11", natsort.Less},

		// leading zeros carry no magnitude
		{"007", "7", natsort.Equal},
		{"01", "02", natsort.Less},
		{"image_1", "image_000001b", natsort.Less},

		// prefix tie-break by length
		{"a", "a1", natsort.Less},
		{"a1", "a", natsort.Greater},
		{"", "", natsort.Equal},
		{"", "a", natsort.Less},

		// code-point order for letter runs: no case folding
		{"A", "a", natsort.Less},
		{"a1", "A2", natsort.Greater},

		// non-ASCII digits compare by magnitude against ASCII ones
		{"٥", "5", natsort.Equal},
		{"٥", "6", natsort.Less},

		// arbitrary precision: one above and at 2^64
		{"v18446744073709551616", "v18446744073709551615", natsort.Greater},
		{"v18446744073709551616", "v18446744073709551616", natsort.Equal},
	}

	for _, tc := range cases {
		if got := natsort.CompareStrings(tc.a, tc.b); got != tc.want {
			t.Errorf("CompareStrings(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareSharedAffixes(t *testing.T) {
	// A smaller magnitude must order first regardless of surrounding text
	// shared by both sides.
	affixes := []struct{ prefix, suffix string }{
		{"", ""},
		{"v", ""},
		{"release-", ".tar.gz"},
		{"", " final"},
	}
	pairs := [][2]string{
		{"0", "1"},
		{"2", "11"},
		{"9", "0010"},
		{"18446744073709551615", "18446744073709551616"},
	}

	for _, af := range affixes {
		for _, p := range pairs {
			a := af.prefix + p[0] + af.suffix
			b := af.prefix + p[1] + af.suffix
			if got := natsort.CompareStrings(a, b); got != natsort.Less {
				t.Errorf("CompareStrings(%q, %q) = %v, want less", a, b, got)
			}
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	inputs := []string{"", "a", "1", "file42.txt", "00x00", "अध्याय१"}

	for _, s := range inputs {
		if got := natsort.CompareStrings(s, s); got != natsort.Equal {
			t.Errorf("CompareStrings(%q, %q) = %v, want equal", s, s, got)
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"file1", "file2"},
		{"a", "a1"},
		{"aaa", "aab"},
		{"007", "8"},
	}

	for _, p := range pairs {
		fwd := natsort.CompareStrings(p[0], p[1])
		rev := natsort.CompareStrings(p[1], p[0])
		if fwd != natsort.Less || rev != natsort.Greater {
			t.Errorf("CompareStrings(%q, %q) = %v / reversed %v, want less/greater", p[0], p[1], fwd, rev)
		}
	}
}

func TestCompareShortCircuitsOnMismatch(t *testing.T) {
	// The mismatch at position 0 must decide the result before the later
	// pairs are ever considered.
	if got := natsort.CompareStrings("1z", "a0"); got != natsort.Incomparable {
		t.Fatalf("CompareStrings(\"1z\", \"a0\") = %v, want incomparable", got)
	}
}

func TestOrderingString(t *testing.T) {
	cases := []struct {
		ord  natsort.Ordering
		want string
	}{
		{natsort.Less, "less"},
		{natsort.Equal, "equal"},
		{natsort.Greater, "greater"},
		{natsort.Incomparable, "incomparable"},
	}

	for _, tc := range cases {
		if got := tc.ord.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.ord, got, tc.want)
		}
	}
}

func TestOrderingOrdered(t *testing.T) {
	for _, ord := range []natsort.Ordering{natsort.Less, natsort.Equal, natsort.Greater} {
		if !ord.Ordered() {
			t.Errorf("%v.Ordered() = false, want true", ord)
		}
	}
	if natsort.Incomparable.Ordered() {
		t.Error("Incomparable.Ordered() = true, want false")
	}
}
