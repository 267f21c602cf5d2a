// Package textfmt renders token sequences and comparison outcomes for the
// natsort CLI.
package textfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"natsort"
)

// TokenOutput is the JSON projection of a single token.
type TokenOutput struct {
	Kind  string       `json:"kind"`
	Text  string       `json:"text"`
	Span  natsort.Span `json:"span"`
	Value string       `json:"value,omitempty"`
}

// TokensPretty writes the sequence as a fixed-width, human-readable listing.
func TokensPretty(w io.Writer, seq natsort.Sequence) error {
	for i, tok := range seq {
		if _, err := fmt.Fprintf(w, "%3d: %-7s %q at %s", i+1, tok.Kind, tok.Text, tok.Span); err != nil {
			return err
		}
		if tok.Kind == natsort.Number {
			if _, err := fmt.Fprintf(w, " = %s", tok.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// TokensJSON writes the sequence as an indented JSON array.
func TokensJSON(w io.Writer, seq natsort.Sequence) error {
	out := make([]TokenOutput, 0, len(seq))
	for _, tok := range seq {
		entry := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.Value != nil {
			entry.Value = tok.Value.String()
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

var (
	lessColor         = color.New(color.FgGreen)
	equalColor        = color.New(color.FgYellow)
	greaterColor      = color.New(color.FgBlue)
	incomparableColor = color.New(color.FgRed, color.Bold)
)

// OrderingWord renders an ordering as the word the CLI prints, colored when
// color output is enabled globally.
func OrderingWord(o natsort.Ordering) string {
	switch o {
	case natsort.Less:
		return lessColor.Sprint(o.String())
	case natsort.Equal:
		return equalColor.Sprint(o.String())
	case natsort.Greater:
		return greaterColor.Sprint(o.String())
	default:
		return incomparableColor.Sprint(o.String())
	}
}
