// Package natsort orders strings the way a human reads them: runs of decimal
// digits compare by numeric magnitude instead of code-point order, so
// "file2.txt" sorts before "file11.txt".
//
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Tokens in a Sequence strictly alternate between Letters and Number,
//     because each run is extended maximally during tokenization.
//   - Number values are arbitrary precision; digit runs never overflow.
//   - Compare is a partial order: sequences diverging at a Letters/Number
//     position are Incomparable. Only Sort treats that as an error.
package natsort
