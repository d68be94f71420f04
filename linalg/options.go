// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the printing helpers.
// This file defines:
//   - Option (functional options over an unexported config),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper that applies defaults then user options in order.
//
// Design goals:
//   - The zero configuration reproduces the canonical text format exactly:
//     each element formatted with %v and followed by one space, one newline
//     per row, one extra newline after the last row.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package linalg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator follows every element, including the last one in a row.
	DefaultSeparator = " "

	// DefaultVerb is the fmt verb applied to each element.
	DefaultVerb = "%v"

	// rowTerminator ends each row and, once more, the whole matrix.
	rowTerminator = '\n'
)

// Panic messages (kept as constants to avoid "magic strings" in tests).
const (
	panicNilOutput   = "linalg: WithOutput(nil)"
	panicInvalidVerb = "linalg: WithVerb requires a single fmt verb, e.g. \"%v\" or \"%.3f\""
)

// Option configures Print1D/Print2D and their writer variants.
type Option func(*printOptions)

// printOptions is the resolved printing configuration.
type printOptions struct {
	out       io.Writer    // destination (default os.Stdout)
	sep       string       // element separator (default DefaultSeparator)
	verb      string       // per-element fmt verb (default DefaultVerb)
	lang      language.Tag // locale for number formatting when localized
	localized bool         // format through x/text/message instead of fmt
}

// formatFunc matches fmt.Fprintf; localized printers adapt to it.
type formatFunc func(w io.Writer, format string, a ...any) (int, error)

// WithOutput redirects printing to w. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicNilOutput)
	}

	return func(o *printOptions) { o.out = w }
}

// WithSeparator replaces the string written after every element.
// Any string is accepted, including "".
func WithSeparator(sep string) Option {
	return func(o *printOptions) { o.sep = sep }
}

// WithVerb sets the fmt verb used for each element, e.g. "%.2f" or "%6d".
// Panics unless verb contains exactly one directive; an escaped "%%" is
// literal text and does not count.
func WithVerb(verb string) Option {
	bare := strings.ReplaceAll(verb, "%%", "")
	if strings.Count(bare, "%") != 1 || strings.HasSuffix(bare, "%") {
		panic(panicInvalidVerb)
	}

	return func(o *printOptions) { o.verb = verb }
}

// WithLanguage formats numbers for the given locale (digit grouping, decimal
// mark) using golang.org/x/text/message. language.Und keeps plain fmt output.
func WithLanguage(tag language.Tag) Option {
	return func(o *printOptions) {
		o.lang = tag
		o.localized = tag != language.Und
	}
}

// defaultOptions returns the canonical configuration.
func defaultOptions() printOptions {
	return printOptions{
		out:  os.Stdout,
		sep:  DefaultSeparator,
		verb: DefaultVerb,
		lang: language.Und,
	}
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) printOptions {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// formatter returns fmt.Fprintf, or a locale-aware equivalent.
func (o printOptions) formatter() formatFunc {
	if !o.localized {
		return fmt.Fprintf
	}
	p := message.NewPrinter(o.lang)

	return func(w io.Writer, format string, a ...any) (int, error) {
		return p.Fprintf(w, format, a...)
	}
}
