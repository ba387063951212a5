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

import (
	"strings"

	"github.com/affixkit/affix/encoding"
)

// registry is the ordered list of recognizers Parse tries at the start of
// every non-blank line. Order only matters where one key could be read as
// a prefix of another; none of the directives below collide that way, but
// the table and rule-group recognizers are still listed before the
// generic scalar ones to keep the longest, most specific matches first,
// mirroring how the affix grammar itself groups them.
var registry = buildRegistry()

func buildRegistry() []recognizer {
	return []recognizer{
		stringRecognizer("#", func(s string) AffixNode { return Comment{Text: s} }),

		ruleGroupRecognizer(Prefix, "PFX"),
		ruleGroupRecognizer(Suffix, "SFX"),

		tableRecognizer("AF", parseAFRow, func(rows []string) AffixNode { return AffixAlias{Aliases: rows} }),
		tableRecognizer("AM", parseAMRow, func(rows []string) AffixNode { return MorphAlias{Aliases: rows} }),
		tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} }),
		tableRecognizer("ICONV", conversionRowParser(false), func(rows []Conversion) AffixNode { return AfxInputConversion{Conversions: rows} }),
		tableRecognizer("OCONV", conversionRowParser(false), func(rows []Conversion) AffixNode { return AfxOutputConversion{Conversions: rows} }),
		tableRecognizer("MAP", parseMapRow, func(rows []MapGroup) AffixNode { return Mapping{Groups: rows} }),
		tableRecognizer("BREAK", parseBreakRow, func(rows []string) AffixNode { return BreakSeparator{Values: rows} }),
		tableRecognizer("COMPOUNDRULE", parseCompoundRuleRow, func(rows []string) AffixNode { return CompoundRule{Patterns: rows} }),
		tableRecognizer("CHECKCOMPOUNDPATTERN", parseCompoundPatternRow, func(rows []CompoundPattern) AffixNode { return CompoundForbidPats{Patterns: rows} }),
		tableRecognizer("PHONE", parsePhoneticRow, func(rows []PhoneticRule) AffixNode { return Phonetic{Rules: rows} }),

		fallibleRecognizer("SET", func(payload string) (AffixNode, error) {
			name, err := encoding.Create(payload)
			if err != nil {
				return nil, err
			}
			return Encoding{Name: name}, nil
		}, func(err error) ParseErrorKind { return BadEncoding{Cause: err} }),
		fallibleRecognizer("FLAG", func(payload string) (AffixNode, error) {
			name, err := encoding.Create(payload)
			if err != nil {
				return nil, err
			}
			return FlagMode{Name: name}, nil
		}, func(err error) ParseErrorKind { return Flag{Cause: err} }),

		compoundSyllableRecognizer("COMPOUNDSYLLABLE"),

		charRecognizer("CIRCUMFIX", func(r rune) AffixNode { return CircumfixFlag{Char: r} }),
		charRecognizer("FORBIDDENWORD", func(r rune) AffixNode { return ForbiddenWordFlag{Char: r} }),
		charRecognizer("KEEPCASE", func(r rune) AffixNode { return KeepCaseFlag{Char: r} }),
		charRecognizer("SUBSTANDARD", func(r rune) AffixNode { return SubstandardFlag{Char: r} }),
		charRecognizer("NOSUGGEST", func(r rune) AffixNode { return NoSuggestFlag{Char: r} }),
		charRecognizer("NEEDAFFIX", func(r rune) AffixNode { return NeededFlag{Char: r} }),
		charRecognizer("PSEUDOROOT", func(r rune) AffixNode { return PseudoRootFlag{Char: r} }),
		charRecognizer("WARN", func(r rune) AffixNode { return WarnRareFlag{Char: r} }),
		charRecognizer("LEMMA_PRESENT", func(r rune) AffixNode { return LemmaPresentFlag{Char: r} }),
		charRecognizer("COMPOUNDFLAG", func(r rune) AffixNode { return CompoundFlag{Char: r} }),
		charRecognizer("COMPOUNDBEGIN", func(r rune) AffixNode { return CompoundBeginFlag{Char: r} }),
		charRecognizer("COMPOUNDLAST", func(r rune) AffixNode { return CompoundEndFlag{Char: r} }),
		charRecognizer("COMPOUNDMIDDLE", func(r rune) AffixNode { return CompoundMiddleFlag{Char: r} }),
		charRecognizer("ONLYINCOMPOUND", func(r rune) AffixNode { return CompoundOnlyFlag{Char: r} }),
		charRecognizer("COMPOUNDPERMITFLAG", func(r rune) AffixNode { return CompoundPermitFlag{Char: r} }),
		charRecognizer("COMPOUNDFORBIDFLAG", func(r rune) AffixNode { return CompoundForbidFlag{Char: r} }),
		charRecognizer("COMPOUNDROOT", func(r rune) AffixNode { return CompoundRootFlag{Char: r} }),
		charRecognizer("FORCEUCASE", func(r rune) AffixNode { return CompoundForceUpper{Char: r} }),

		charSetRecognizer("IGNORE", func(rs []rune) AffixNode { return IgnoreChars{Chars: rs} }),

		keyGroupRecognizer("KEY"),

		intRecognizer("COMPOUNDMIN", func(v uint32) AffixNode { return CompoundMin{Value: v} }),
		intRecognizer("COMPOUNDWORDMAX", func(v uint32) AffixNode { return CompoundWordMax{Value: v} }),
		intRecognizer("MAXCPDSUGS", func(v uint32) AffixNode { return MaxCpdSugs{Value: v} }),
		intRecognizer("MAXNGRAMSUGS", func(v uint32) AffixNode { return MaxNGramSugs{Value: v} }),
		intRecognizer("MAXDIFF", func(v uint32) AffixNode { return MaxDiff{Value: v} }),

		stringRecognizer("LANG", func(s string) AffixNode { return Lang{Value: s} }),
		stringRecognizer("TRY", func(s string) AffixNode { return TryChars{Value: s} }),
		stringRecognizer("WORDCHARS", func(s string) AffixNode { return WordChars{Value: s} }),
		stringRecognizer("SYLLABLENUM", func(s string) AffixNode { return SyllableNum{Value: s} }),
		stringRecognizer("NAME", func(s string) AffixNode { return Name{Value: s} }),
		stringRecognizer("HOME", func(s string) AffixNode { return HomePage{Value: s} }),
		stringRecognizer("VERSION", func(s string) AffixNode { return Version{Value: s} }),

		boolRecognizer("COMPLEXPREFIXES", ComplexPrefixes{}),
		boolRecognizer("COMPOUNDMORESUFFIXES", CompoundMoreSuffixes{}),
		boolRecognizer("CHECKCOMPOUNDCASE", CheckCompoundCase{}),
		boolRecognizer("CHECKCOMPOUNDDUP", CheckCompoundDup{}),
		boolRecognizer("CHECKCOMPOUNDREP", CheckCompoundRep{}),
		boolRecognizer("CHECKCOMPOUNDTRIPLE", CheckCompoundTriple{}),
		boolRecognizer("CHECKSHARPS", CheckSharps{}),
		boolRecognizer("FULLSTRIP", FullStrip{}),
		boolRecognizer("FORBIDWARN", ForbidWarn{}),
		boolRecognizer("SIMPLIFIEDTRIPLE", SimplifiedTriple{}),
		boolRecognizer("ONLYMAXDIFF", OnlyMaxDiff{}),
		boolRecognizer("NOSPLITSUGS", NoSplitSuggestions{}),
		boolRecognizer("SUGSWITHDOTS", SugsWithDots{}),
	}
}

// Parse recognizes the directives of an affix file's text and returns them
// in source order. On the first directive that fails to parse, it returns a
// *ParseError naming the failure and the 1-based line it occurred on. Lines
// that match no known directive are not fatal: Parse skips one byte at a
// time past them, so the parser is total over any input and later errors
// still report the correct line.
func Parse(input string) ([]AffixNode, error) {
	var nodes []AffixNode
	head := input
	line := uint32(1)

	for {
		skipped, n := skipBlankLines(head)
		head = skipped
		line += n
		if head == "" {
			return nodes, nil
		}

		matched := false
		for _, r := range registry {
			rowNodes, residual, ok, err := r(head)
			if !ok {
				continue
			}
			matched = true
			if err != nil {
				return nil, err.AddOffset(line, 0)
			}

			consumed := head[:len(head)-len(residual)]
			linesInMatch := uint32(strings.Count(consumed, "\n"))

			next, advanced, nlErr := munchNewline(residual)
			if nlErr != nil {
				return nil, nlErr.AddOffset(line+linesInMatch, 0)
			}
			nodes = append(nodes, rowNodes...)
			line += linesInMatch
			if advanced {
				head = next
				line++
			} else {
				head = ""
			}
			break
		}
		if !matched {
			if head[0] == '\n' {
				line++
			}
			head = head[1:]
		}
	}
}

// skipBlankLines advances past any run of whitespace-only lines, returning
// the remaining input and how many lines were skipped.
func skipBlankLines(head string) (string, uint32) {
	var n uint32
	for {
		i := strings.IndexByte(head, '\n')
		var line string
		if i < 0 {
			line = head
		} else {
			line = head[:i]
		}
		if strings.TrimSpace(line) != "" {
			return head, n
		}
		if i < 0 {
			return "", n
		}
		head = head[i+1:]
		n++
	}
}
