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

package affix

import "github.com/affixkit/affix/encoding"

// AffixNode is the closed set of values Parse can produce, one per
// recognized directive (or, for "#" lines, one per comment). Callers type
// switch on the concrete type to recover a directive's payload.
type AffixNode interface {
	affixNode()
}

// Comment preserves the text of a "#"-introduced line (without the leading
// "#" or trailing newline, and with surrounding whitespace trimmed) so that
// round-tripping tools can reconstruct it.
type Comment struct {
	Text string
}

func (Comment) affixNode() {}

// Nullary boolean directives: present (with no payload) means true. Hunspell
// never turns these off once set, so there is no corresponding false form.
type (
	ComplexPrefixes      struct{}
	CompoundMoreSuffixes struct{}
	CheckCompoundCase    struct{}
	CheckCompoundDup     struct{}
	CheckCompoundRep     struct{}
	CheckCompoundTriple  struct{}
	CheckSharps          struct{}
	FullStrip            struct{}
	ForbidWarn           struct{}
	SimplifiedTriple     struct{}
	OnlyMaxDiff          struct{}
	NoSplitSuggestions   struct{}
	SugsWithDots         struct{}
)

func (ComplexPrefixes) affixNode()      {}
func (CompoundMoreSuffixes) affixNode() {}
func (CheckCompoundCase) affixNode()    {}
func (CheckCompoundDup) affixNode()     {}
func (CheckCompoundRep) affixNode()     {}
func (CheckCompoundTriple) affixNode()  {}
func (CheckSharps) affixNode()          {}
func (FullStrip) affixNode()            {}
func (ForbidWarn) affixNode()           {}
func (SimplifiedTriple) affixNode()     {}
func (OnlyMaxDiff) affixNode()          {}
func (NoSplitSuggestions) affixNode()   {}
func (SugsWithDots) affixNode()         {}

// Free-text string directives: the whole trimmed payload is kept as-is.
type (
	Lang         struct{ Value string }
	TryChars     struct{ Value string }
	WordChars    struct{ Value string }
	SyllableNum  struct{ Value string }
	Name         struct{ Value string }
	HomePage     struct{ Value string }
	Version      struct{ Value string }
)

func (Lang) affixNode()        {}
func (TryChars) affixNode()    {}
func (WordChars) affixNode()   {}
func (SyllableNum) affixNode() {}
func (Name) affixNode()        {}
func (HomePage) affixNode()    {}
func (Version) affixNode()     {}

// NeighborKeys is the payload of the KEY directive: groups of adjacent
// keyboard keys, used to weight suggestion scoring, split on the literal
// "|" that separates them in the source row (e.g. "qwertyuiop|asdfghjkl").
type NeighborKeys struct{ Groups []string }

func (NeighborKeys) affixNode() {}

// IgnoreChars is the payload of the IGNORE directive: an ordered sequence
// of codepoints, preserved in source order including duplicates (duplicate
// detection, where the spec calls for it, is a validation-layer concern).
type IgnoreChars struct{ Chars []rune }

func (IgnoreChars) affixNode() {}

// Single codepoint flag directives: each names one flag character that
// lexicon entries or affix rules quote to opt into the described behavior.
type (
	NoSuggestFlag      struct{ Char rune }
	WarnRareFlag       struct{ Char rune }
	CompoundFlag       struct{ Char rune }
	CompoundBeginFlag  struct{ Char rune }
	CompoundEndFlag    struct{ Char rune }
	CompoundMiddleFlag struct{ Char rune }
	CompoundOnlyFlag   struct{ Char rune }
	CompoundPermitFlag struct{ Char rune }
	CompoundForbidFlag struct{ Char rune }
	CompoundRootFlag   struct{ Char rune }
	CompoundForceUpper struct{ Char rune }
	CircumfixFlag      struct{ Char rune }
	ForbiddenWordFlag  struct{ Char rune }
	KeepCaseFlag       struct{ Char rune }
	LemmaPresentFlag   struct{ Char rune }
	NeededFlag         struct{ Char rune }
	PseudoRootFlag     struct{ Char rune }
	SubstandardFlag    struct{ Char rune }
)

func (NoSuggestFlag) affixNode()      {}
func (WarnRareFlag) affixNode()       {}
func (CompoundFlag) affixNode()       {}
func (CompoundBeginFlag) affixNode()  {}
func (CompoundEndFlag) affixNode()    {}
func (CompoundMiddleFlag) affixNode() {}
func (CompoundOnlyFlag) affixNode()   {}
func (CompoundPermitFlag) affixNode() {}
func (CompoundForbidFlag) affixNode() {}
func (CompoundRootFlag) affixNode()   {}
func (CompoundForceUpper) affixNode() {}
func (CircumfixFlag) affixNode()      {}
func (ForbiddenWordFlag) affixNode()  {}
func (KeepCaseFlag) affixNode()       {}
func (LemmaPresentFlag) affixNode()   {}
func (NeededFlag) affixNode()         {}
func (PseudoRootFlag) affixNode()     {}
func (SubstandardFlag) affixNode()    {}

// Small non-negative integer directives.
type (
	CompoundMin      struct{ Value uint32 }
	CompoundWordMax  struct{ Value uint32 }
	MaxCpdSugs       struct{ Value uint32 }
	MaxNGramSugs     struct{ Value uint32 }
	MaxDiff          struct{ Value uint32 }
)

func (CompoundMin) affixNode()     {}
func (CompoundWordMax) affixNode() {}
func (MaxCpdSugs) affixNode()      {}
func (MaxNGramSugs) affixNode()    {}
func (MaxDiff) affixNode()         {}

// Encoding reports a validated SET charset name.
type Encoding struct{ Name encoding.EncodingName }

func (Encoding) affixNode() {}

// FlagMode reports a validated FLAG convention. It accepts the same closed
// name space as Encoding ("long", "num", or any name encoding.Create
// accepts); no narrower set is enforced for FLAG.
type FlagMode struct{ Name encoding.EncodingName }

func (FlagMode) affixNode() {}

// AffixAlias is the AF table: every flag-set row, in table order, numbered
// from 1 by position. PFX/SFX rows reference an alias by that position
// instead of spelling out the flag set again.
type AffixAlias struct {
	Aliases []string
}

func (AffixAlias) affixNode() {}

// MorphAlias is the AM table: every morphological-tag row, in table order,
// numbered from 1 by position.
type MorphAlias struct {
	Aliases []string
}

func (MorphAlias) affixNode() {}

// Conversion is one row of a REP, ICONV, or OCONV table: a pattern and its
// replacement. REP additionally allows whitespace in either field (encoded
// as "_" in the source row); ICONV/OCONV do not.
type Conversion struct {
	From string
	To   string
}

// Replacement is the REP table: suggestion-time textual substitutions.
type Replacement struct {
	Conversions []Conversion
}

func (Replacement) affixNode() {}

// AfxInputConversion is the ICONV table: substitutions applied to input
// before the rest of the pipeline sees it.
type AfxInputConversion struct {
	Conversions []Conversion
}

func (AfxInputConversion) affixNode() {}

// AfxOutputConversion is the OCONV table: substitutions applied to output.
type AfxOutputConversion struct {
	Conversions []Conversion
}

func (AfxOutputConversion) affixNode() {}

// MapGroup is one row of a MAP table: a set of strings treated as mutually
// interchangeable by suggestion and compounding. Most entries are single
// characters, but a parenthesized run like "(ae)" names a multi-character
// entry, so entries are kept as strings rather than runes.
type MapGroup struct {
	Entries []string
}

// Mapping is the MAP table.
type Mapping struct {
	Groups []MapGroup
}

func (Mapping) affixNode() {}

// BreakSeparator is the BREAK table: strings that may separate compound
// components without triggering compound validation.
type BreakSeparator struct {
	Values []string
}

func (BreakSeparator) affixNode() {}

// CompoundRule is the COMPOUNDRULE table: regex-like patterns over flags
// describing permitted compound shapes. It is a distinct node from
// BreakSeparator: although both directives share BREAK's historical row
// grammar in one reference implementation, Hunspell's own documentation and
// test corpora treat COMPOUNDRULE rows as pattern strings, not separator
// literals, so conflating the two silently misparses real affix files.
type CompoundRule struct {
	Patterns []string
}

func (CompoundRule) affixNode() {}

// PhoneticRule is one row of a PHONE table: a metaphone-style pattern and
// its phonetic replacement.
type PhoneticRule struct {
	Pattern     string
	Replacement string
}

// Phonetic is the PHONE table.
type Phonetic struct {
	Rules []PhoneticRule
}

func (Phonetic) affixNode() {}

// CompoundPattern is one row of a CHECKCOMPOUNDPATTERN table.
type CompoundPattern struct {
	EndChars        string
	EndFlag         string
	BeginChars      string
	BeginFlag       string
	ReplacementType string
}

// CompoundForbidPats is the CHECKCOMPOUNDPATTERN table: compound boundary
// shapes that are explicitly forbidden.
type CompoundForbidPats struct {
	Patterns []CompoundPattern
}

func (CompoundForbidPats) affixNode() {}

// CompoundSyllable is the payload of a COMPOUNDSYLLABLE directive: a
// maximum syllable count and the vowel set used to count them.
type CompoundSyllable struct {
	Max    uint32
	Vowels []rune
}

func (CompoundSyllable) affixNode() {}

// MorphTag is a single "key:value" morphological annotation, e.g. "st:run"
// or "po:verb", attached to an affix rule body row. AM table rows are not
// split into tags; MorphAlias keeps them as raw strings.
type MorphTag struct {
	Key   string
	Value string
}

// AffixRule is one body row of a PFX or SFX rule group: a stripped suffix
// or prefix, the replacement to add, the condition string it applies
// under, and any morphological tags trailing the row.
type AffixRule struct {
	Strip       string
	Add         string
	Condition   string
	MorphTags   []MorphTag
}

// RuleGroup is a full PFX or SFX directive: its header (flag, whether
// cross-product combination with the opposite affix type is allowed, and
// the declared row count) plus its body rows.
type RuleGroup struct {
	Kind         AffixKind
	Flag         string
	CrossProduct bool
	Rules        []AffixRule
}

func (RuleGroup) affixNode() {}

// AffixKind distinguishes a prefix rule group from a suffix rule group.
type AffixKind uint8

const (
	Prefix AffixKind = iota
	Suffix
)
