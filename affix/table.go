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

import "strconv"

// tableRecognizer builds a recognizer for a counted table directive: a
// header line "KEY <count>" followed by exactly <count> body lines, each
// itself repeating KEY as its own prefix (mirroring ruleGroupRecognizer's
// header/body grammar). Each body row is handed to parseRow along with its
// 0-based position in the table; the full row slice is then handed to wrap
// to build the single node the whole directive occurrence produces. A table
// that runs out of input, or hits EOF, or whose row does not repeat KEY,
// before <count> rows are read produces a TableCount error reporting how
// many rows were actually found.
func tableRecognizer[T any](key string, parseRow func(index uint32, row string) (T, *ParseError), wrap func([]T) AffixNode) recognizer {
	return func(head string) ([]AffixNode, string, bool, *ParseError) {
		payload, residual, ok := splitLine(head, key)
		if !ok {
			return nil, "", false, nil
		}
		count, numErr := strconv.ParseUint(payload, 10, 32)
		if numErr != nil {
			return nil, "", true, newParseError(BadInt{Payload: payload, Cause: numErr})
		}
		if count == 0 {
			return []AffixNode{wrap(nil)}, residual, true, nil
		}

		cur, advanced, err := munchNewline(residual)
		if err != nil {
			return nil, "", true, err
		}
		if !advanced {
			return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: 0})
		}

		rows := make([]T, 0, count)
		for i := uint32(0); i < uint32(count); i++ {
			if cur == "" {
				return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: i})
			}
			rowPayload, rowResidual, rowOK := splitLine(cur, key)
			if !rowOK {
				return nil, "", true, newParseError(TableCount{Expected: uint32(count), Received: i})
			}
			row, rowErr := parseRow(i, rowPayload)
			if rowErr != nil {
				return nil, "", true, rowErr.AddOffset(i+1, 0)
			}
			rows = append(rows, row)

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
		return []AffixNode{wrap(rows)}, cur, true, nil
	}
}
