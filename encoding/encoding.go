// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package encoding defines the closed set of identifiers accepted by the
// affix file's SET and FLAG directives.
//
// SET names a character encoding for the dictionary/affix text itself (e.g.
// "UTF-8", "ISO8859-1"); FLAG names how flag tokens are represented (one of
// the two Hunspell-specific conventions "long"/"num", or "UTF-8" meaning
// flags are single Unicode scalars). Both directives share the same closed
// identifier space, so a single EncodingName type backs both.
package encoding

import (
	"fmt"
	"slices"

	"golang.org/x/text/encoding/htmlindex"
)

// EncodingName is a validated identifier accepted by SET or FLAG, kept in the
// spelling the affix file used.
type EncodingName string

// The two flag-representation conventions that are not character encodings.
const (
	FlagLong EncodingName = "long"
	FlagNum  EncodingName = "num"
)

// aliases maps the legacy/Hunspell-style spelling of a charset name to the
// canonical name the WHATWG registry (golang.org/x/text/encoding/htmlindex)
// expects. Hunspell affix files predate the WHATWG registry and use their
// own capitalization and punctuation conventions.
var aliases = map[string]string{
	"ISO8859-1":       "iso-8859-1",
	"ISO8859-2":       "iso-8859-2",
	"ISO8859-3":       "iso-8859-3",
	"ISO8859-4":       "iso-8859-4",
	"ISO8859-5":       "iso-8859-5",
	"ISO8859-6":       "iso-8859-6",
	"ISO8859-7":       "iso-8859-7",
	"ISO8859-8":       "iso-8859-8",
	"ISO8859-9":       "iso-8859-9",
	"ISO8859-10":      "iso-8859-10",
	"ISO8859-13":      "iso-8859-13",
	"ISO8859-14":      "iso-8859-14",
	"ISO8859-15":      "iso-8859-15",
	"KOI8-R":          "koi8-r",
	"KOI8-U":          "koi8-u",
	"cp1251":          "windows-1251",
	"microsoft-cp1251": "windows-1251",
	"microsoft-cp1252": "windows-1252",
	"UTF-8":           "utf-8",
}

// extraKnown lists legacy Hunspell SET values that have no entry in the
// WHATWG registry but are nonetheless legitimate (mostly South/Southeast
// Asian legacy codepages predating Unicode normalization).
var extraKnown = []string{
	"ISCII-DEVANAGARI",
	"TIS620-2533",
}

// Create validates a raw SET/FLAG payload. It accepts the Hunspell-specific
// "long"/"num" flag conventions directly, delegates charset-name validation
// to the WHATWG registry (after dealiasing Hunspell's non-standard
// spellings), and falls back to extraKnown for names the registry does not
// carry. An accepted name is returned as spelled in raw; the dealiased
// registry name is used only for the lookup.
func Create(raw string) (EncodingName, error) {
	switch raw {
	case string(FlagLong):
		return FlagLong, nil
	case string(FlagNum):
		return FlagNum, nil
	}

	canonical := dealias(raw, aliases)
	if _, err := htmlindex.Get(canonical); err == nil {
		return EncodingName(raw), nil
	}
	if slices.Contains(extraKnown, raw) {
		return EncodingName(raw), nil
	}
	return "", fmt.Errorf("unknown encoding name %q, expected a registered charset, an alias of one, or %q/%q", raw, FlagLong, FlagNum)
}

// IsFlagConvention reports whether the name designates a Hunspell flag
// representation rather than a text charset.
func (n EncodingName) IsFlagConvention() bool {
	return n == FlagLong || n == FlagNum
}

func dealias[T ~string](value T, table map[string]T) T {
	if dealiased, exists := table[string(value)]; exists {
		return dealiased
	}
	return value
}
