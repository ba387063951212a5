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

// lineTerminators are characters that end the payload of a directive other
// than the "#" comment directive.
const lineTerminators = "\r\n#"

// newlines are the only terminators splitLine uses for the "#" comment
// directive, whose payload may itself contain "#".
const newlines = "\r\n"

// splitLine succeeds iff head begins with key. It returns the payload
// between key and the nearest terminator, trimmed of surrounding
// whitespace, and the residual starting at the terminator (inclusive). When
// key is "#", "#" itself is not a terminator, so the rest of the comment
// line is kept as payload.
func splitLine(head, key string) (payload, residual string, ok bool) {
	if !strings.HasPrefix(head, key) {
		return "", "", false
	}

	terminators := lineTerminators
	if key == "#" {
		terminators = newlines
	}

	rest := head[len(key):]
	if i := strings.IndexAny(rest, terminators); i >= 0 {
		return strings.TrimSpace(rest[:i]), rest[i:], true
	}
	return strings.TrimSpace(rest), "", true
}

// munchNewline advances past the next newline in residual. It returns
// (tail, true, nil) when a newline was found and nothing but whitespace (and
// an optional trailing "#..." comment) preceded it; (_, false, nil) when
// residual has no more newlines (end of input); and (_, _, err) when
// non-whitespace content follows a directive's payload on the same line.
func munchNewline(residual string) (string, bool, *ParseError) {
	i := strings.IndexByte(residual, '\n')
	if i < 0 {
		return "", false, nil
	}

	line := residual[:i]
	if c := strings.IndexByte(line, '#'); c >= 0 {
		line = line[:c]
	}
	if j := strings.IndexFunc(line, isNonWhitespace); j >= 0 {
		r := []rune(line[j:])
		return "", false, newParseError(NonWhitespace{Char: r[0]})
	}

	return residual[i+1:], true, nil
}

func isNonWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\v', '\f', '\r':
		return false
	default:
		return true
	}
}
