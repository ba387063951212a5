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
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// reCompoundPattern matches a CHECKCOMPOUNDPATTERN row: end chars (with an
// optional "/flag" suffix), begin chars (same), and an optional trailing
// replacement-type token, e.g. "ng/C sz/B" or "n/A n/A onlyincompound".
var reCompoundPattern = regexp.MustCompile(`^(\S+?)(?:/(\S+))?\s+(\S+?)(?:/(\S+))?(?:\s+(\S+))?$`)

// errCompoundPatternShape is the cause carried by a CompoundPatternError
// when a row does not match the two-or-three-field grammar.
var errCompoundPatternShape = errors.New(`expected "endchars[/flag] beginchars[/flag] [replacement]"`)

// parseCompoundPatternRow parses one row of a CHECKCOMPOUNDPATTERN table.
func parseCompoundPatternRow(_ uint32, row string) (CompoundPattern, *ParseError) {
	m := reCompoundPattern.FindStringSubmatch(row)
	if m == nil {
		return CompoundPattern{}, newParseError(CompoundPatternError{Row: row, Cause: errCompoundPatternShape})
	}
	return CompoundPattern{
		EndChars:        m[1],
		EndFlag:         m[2],
		BeginChars:      m[3],
		BeginFlag:       m[4],
		ReplacementType: m[5],
	}, nil
}

// errCompoundSyllableShape is the cause carried by a CompoundSyllable
// ParseError when the payload is not "<max> <vowels>".
var errCompoundSyllableShape = errors.New("expected \"<max syllable count> <vowel characters>\"")

// compoundSyllableRecognizer builds the recognizer for COMPOUNDSYLLABLE,
// whose payload pairs a maximum syllable count with the vowel set used to
// count them, e.g. "3 aeiouAEIOU".
func compoundSyllableRecognizer(key string) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		fields := strings.Fields(payload)
		if len(fields) != 2 {
			return nil, newParseError(CompoundSyllable{Cause: errCompoundSyllableShape})
		}
		max, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, newParseError(CompoundSyllable{Cause: err})
		}
		return CompoundSyllable{Max: uint32(max), Vowels: []rune(fields[1])}, nil
	})
}
