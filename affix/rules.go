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

import "strings"

// parseAFRow parses one row of an AF (flag-alias) table: the raw flag set
// an alias stands for, quoted verbatim by PFX/SFX rules that use it.
func parseAFRow(_ uint32, row string) (string, *ParseError) {
	if strings.ContainsAny(row, " \t") {
		return "", newParseError(ContainsWhitespace{Row: row})
	}
	return row, nil
}

// parseAMRow parses one row of an AM (morphological-alias) table: the raw
// morphological tag text an alias stands for.
func parseAMRow(_ uint32, row string) (string, *ParseError) {
	if strings.ContainsAny(row, " \t") {
		return "", newParseError(ContainsWhitespace{Row: row})
	}
	return row, nil
}

// parseMapRow parses one row of a MAP table. Most entries are single
// characters; a parenthesized run names a multi-character entry that
// should be treated as one interchangeable unit, e.g. "aáã(ae)" holds the
// entries "a", "á", "ã", "ae". A row must contribute at least two entries,
// since a group of one is not interchangeable with anything.
func parseMapRow(_ uint32, row string) (MapGroup, *ParseError) {
	if strings.ContainsAny(row, " \t") {
		return MapGroup{}, newParseError(ContainsWhitespace{Row: row})
	}
	runes := []rune(row)
	var entries []string
	for i := 0; i < len(runes); {
		if runes[i] != '(' {
			entries = append(entries, string(runes[i]))
			i++
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] != ')' {
			j++
		}
		if j >= len(runes) {
			return MapGroup{}, newParseError(AffixBody{Row: row})
		}
		entries = append(entries, string(runes[i+1:j]))
		i = j + 1
	}
	if len(entries) < 2 {
		return MapGroup{}, newParseError(CharCount{Row: row, Expected: 2})
	}
	return MapGroup{Entries: entries}, nil
}

// parseBreakRow parses one row of a BREAK table: a literal separator
// string, such as "-" or "_", that may split a compound without the
// components on either side being validated as a compound themselves.
func parseBreakRow(_ uint32, row string) (string, *ParseError) {
	if strings.ContainsAny(row, " \t") {
		return "", newParseError(ContainsWhitespace{Row: row})
	}
	return row, nil
}

// parseCompoundRuleRow parses one row of a COMPOUNDRULE table: a
// regex-like pattern over flags, e.g. "A*B?C+".
func parseCompoundRuleRow(_ uint32, row string) (string, *ParseError) {
	if strings.ContainsAny(row, " \t") {
		return "", newParseError(ContainsWhitespace{Row: row})
	}
	return row, nil
}
