// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pricing

import (
	"fmt"
	"log/slog"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats prices for display in a given locale and currency.
type Formatter struct {

	// Language is the language used for number formatting.
	Language language.Tag

	// Currency is the currency prices are shown in.
	Currency currency.Unit

	printer *message.Printer
}

// NewFormatter returns a new formatter for the given BCP 47 locale
// and ISO 4217 currency code. If the locale is empty, the locale of
// the system is used, falling back on English.
func NewFormatter(loc, cur string) (*Formatter, error) {
	if loc == "" {
		loc = DetectLocale()
	}
	tag, err := language.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("pricing: invalid locale %q: %w", loc, err)
	}
	unit, err := currency.ParseISO(cur)
	if err != nil {
		return nil, fmt.Errorf("pricing: invalid currency %q: %w", cur, err)
	}
	return &Formatter{Language: tag, Currency: unit, printer: message.NewPrinter(tag)}, nil
}

// Format returns the given amount with the currency symbol
// and the digit grouping of the locale.
func (f *Formatter) Format(amount int) string {
	return f.printer.Sprintf("%v %d", currency.Symbol(f.Currency), amount)
}

// DetectLocale returns the locale of the system, or "en" if it cannot
// be determined or is not a valid BCP 47 tag, as with the "C" locale.
func DetectLocale() string {
	loc, err := locale.GetLocale()
	if err != nil {
		slog.Debug("locale detection failed", "err", err)
		return "en"
	}
	if loc == "" {
		return "en"
	}
	if _, err := language.Parse(loc); err != nil {
		slog.Debug("unusable system locale", "locale", loc, "err", err)
		return "en"
	}
	return loc
}
