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
	"regexp"
	"strconv"
)

// reRuleHeader matches a PFX/SFX header payload (the directive key itself
// already stripped): flag, cross-product flag, and declared row count, e.g.
// "A Y 2".
var reRuleHeader = regexp.MustCompile(`^(\S+)\s+([YyNn])\s+(\d+)$`)

// reRuleBody matches a PFX/SFX body row payload (the directive key already
// stripped): flag, stripped text, text to add, condition ("." matches
// anything), and any number of trailing "key:value" morphological tags,
// e.g. "A 0 re . st:reach".
var reRuleBody = regexp.MustCompile(`^(\S+)\s+(\S+)\s+(\S+)\s+(\S+)((?:\s+\S+:\S+)*)\s*$`)

// ruleGroupRecognizer builds a recognizer for a PFX or SFX directive. Every
// row of the group, including the header, repeats the directive key, so
// body rows are read the same way the header is: by key-prefixed splitLine.
func ruleGroupRecognizer(kind AffixKind, key string) recognizer {
	return func(head string) ([]AffixNode, string, bool, *ParseError) {
		headerPayload, residual, ok := splitLine(head, key)
		if !ok {
			return nil, "", false, nil
		}
		m := reRuleHeader.FindStringSubmatch(headerPayload)
		if m == nil {
			return nil, "", true, newParseError(AffixBody{Row: headerPayload})
		}
		flag := m[1]
		crossProduct := m[2] == "Y" || m[2] == "y"
		count, numErr := strconv.ParseUint(m[3], 10, 32)
		if numErr != nil {
			return nil, "", true, newParseError(BadInt{Payload: m[3], Cause: numErr})
		}

		group := RuleGroup{Kind: kind, Flag: flag, CrossProduct: crossProduct}
		if count == 0 {
			return []AffixNode{group}, residual, true, nil
		}

		cur, advanced, err := munchNewline(residual)
		if err != nil {
			return nil, "", true, err
		}
		if !advanced {
			return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: 0})
		}

		for i := uint32(0); i < uint32(count); i++ {
			if cur == "" {
				return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: i})
			}
			rowPayload, rowResidual, rowOK := splitLine(cur, key)
			if !rowOK {
				raw, _, _ := splitLine(cur, "")
				return nil, "", true, newParseErrorAt(AffixBody{Row: raw}, i+1, 0)
			}
			rule, ruleErr := parseAffixRule(rowPayload, flag)
			if ruleErr != nil {
				return nil, "", true, ruleErr.AddOffset(i+1, 0)
			}
			group.Rules = append(group.Rules, rule)

			if i == uint32(count)-1 {
				cur = rowResidual
				break
			}
			next, advanced, err := munchNewline(rowResidual)
			if err != nil {
				return nil, "", true, err.AddOffset(i+1, 0)
			}
			if !advanced {
				return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: i + 1})
			}
			cur = next
		}
		return []AffixNode{group}, cur, true, nil
	}
}

// parseAffixRule parses a single PFX/SFX body row payload (the directive
// key already stripped) against the group's flag.
func parseAffixRule(row, groupFlag string) (AffixRule, *ParseError) {
	m := reRuleBody.FindStringSubmatch(row)
	if m == nil {
		return AffixRule{}, newParseError(AffixBody{Row: row})
	}
	flag, strip, add, condition, morphField := m[1], m[2], m[3], m[4], m[5]
	if flag != groupFlag {
		return AffixRule{}, newParseError(AffixFlagMismatch{Row: row, Flag: groupFlag})
	}
	if strip == "0" {
		strip = ""
	}

	tags, tagErr := parseMorphTags(morphField)
	if tagErr != nil {
		return AffixRule{}, tagErr
	}
	return AffixRule{Strip: strip, Add: add, Condition: condition, MorphTags: tags}, nil
}
