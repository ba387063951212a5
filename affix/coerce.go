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
	"strconv"
	"strings"
	"unicode/utf8"
)

// recognizer is the shape every directive recognizer in the registry
// implements: given the unconsumed input, it reports whether its key
// matched and, if so, the nodes it produced (exactly one per directive
// occurrence, tables included) and the residual input positioned
// right after the last consumed payload, before that line's trailing
// newline. The dispatch loop is responsible for the final munchNewline
// call and for computing how many lines a match consumed by diffing head
// and residual, so recognizers never report line counts themselves.
type recognizer func(head string) (nodes []AffixNode, residual string, matched bool, err *ParseError)

// keyedRecognizer builds a single-line recognizer from a key and a
// payload-to-node conversion function, the shared shape of
// bool/string/char/int/char-set directives (spec.md §4.3).
func keyedRecognizer(key string, f func(payload string) (AffixNode, *ParseError)) recognizer {
	return func(head string) ([]AffixNode, string, bool, *ParseError) {
		payload, residual, ok := splitLine(head, key)
		if !ok {
			return nil, "", false, nil
		}
		node, err := f(payload)
		if err != nil {
			return nil, "", true, err
		}
		return []AffixNode{node}, residual, true, nil
	}
}

// boolRecognizer matches a nullary boolean directive: present with an empty
// payload means true; any payload is an error.
func boolRecognizer(key string, node AffixNode) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		if payload != "" {
			return nil, newParseError(BadBool{Payload: payload, Key: key})
		}
		return node, nil
	})
}

// stringRecognizer matches a free-text single-line directive.
func stringRecognizer(key string, ctor func(string) AffixNode) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		return ctor(payload), nil
	})
}

// charRecognizer matches a directive whose payload must be exactly one
// Unicode scalar.
func charRecognizer(key string, ctor func(rune) AffixNode) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		count := utf8.RuneCountInString(payload)
		if count != 1 {
			return nil, newParseError(BadChar{Count: count, Payload: payload})
		}
		r, _ := utf8.DecodeRuneInString(payload)
		return ctor(r), nil
	})
}

// intRecognizer matches a directive whose payload is a non-negative integer.
func intRecognizer(key string, ctor func(uint32) AffixNode) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		v, err := strconv.ParseUint(payload, 10, 32)
		if err != nil {
			return nil, newParseError(BadInt{Payload: payload, Cause: err})
		}
		return ctor(uint32(v)), nil
	})
}

// charSetRecognizer matches a directive whose payload is an ordered
// sequence of codepoints, each contributing one element.
func charSetRecognizer(key string, ctor func([]rune) AffixNode) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		return ctor([]rune(payload)), nil
	})
}

// keyGroupRecognizer matches the KEY directive, whose payload is an ordered
// sequence of keyboard-neighbor groups separated by "|", e.g.
// "qwertyuiop|asdfghjkl|zxcvbnm".
func keyGroupRecognizer(key string) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		return NeighborKeys{Groups: strings.Split(payload, "|")}, nil
	})
}

// fallibleRecognizer is like keyedRecognizer but lets f return a plain error
// (e.g. from encoding.Create) that the caller wraps into a ParseErrorKind.
func fallibleRecognizer(key string, f func(payload string) (AffixNode, error), wrap func(error) ParseErrorKind) recognizer {
	return keyedRecognizer(key, func(payload string) (AffixNode, *ParseError) {
		node, err := f(payload)
		if err != nil {
			return nil, newParseError(wrap(err))
		}
		return node, nil
	})
}
