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

	"github.com/affixkit/affix/internal/collections"
)

// Validate checks cross-node invariants that Parse itself cannot check
// while it is still looking at one directive at a time: that IGNORE does
// not repeat a codepoint, and that MAP, BREAK, and AF tables do not repeat
// an entire row. It returns every violation found rather than stopping at
// the first one, since these are independent of one another: all IGNORE
// violations first (in node order), then those of MAP, BREAK, and AF.
func Validate(nodes []AffixNode) []*ParseError {
	var errs []*ParseError

	for _, node := range nodes {
		if n, ok := node.(IgnoreChars); ok {
			errs = append(errs, duplicateRuneErrors("IGNORE", n.Chars)...)
		}
	}

	errs = append(errs, duplicateStringErrors("MAP", collectGroups(nodes))...)
	errs = append(errs, duplicateStringErrors("BREAK", collectSeparators(nodes))...)
	errs = append(errs, duplicateStringErrors("AF", collectAFFlags(nodes))...)

	return errs
}

func duplicateRuneErrors(directive string, chars []rune) []*ParseError {
	dups := collections.FindDuplicates[[]rune](chars)
	if len(dups) == 0 {
		return nil
	}
	errs := make([]*ParseError, 0, len(dups))
	for _, r := range dups {
		errs = append(errs, newParseError(DuplicateEntry{Directive: directive, Value: string(r)}))
	}
	return errs
}

func duplicateStringErrors(directive string, values []string) []*ParseError {
	dups := collections.FindDuplicates[[]string](values)
	if len(dups) == 0 {
		return nil
	}
	errs := make([]*ParseError, 0, len(dups))
	for _, v := range dups {
		errs = append(errs, newParseError(DuplicateEntry{Directive: directive, Value: v}))
	}
	return errs
}

func collectGroups(nodes []AffixNode) []string {
	return collections.FlatMapSlice(nodes, func(node AffixNode) []string {
		m, ok := node.(Mapping)
		if !ok {
			return nil
		}
		return collections.MapSlice(m.Groups, func(g MapGroup) string {
			return strings.Join(g.Entries, ",")
		})
	})
}

func collectSeparators(nodes []AffixNode) []string {
	return collections.FlatMapSlice(nodes, func(node AffixNode) []string {
		b, ok := node.(BreakSeparator)
		if !ok {
			return nil
		}
		return b.Values
	})
}

func collectAFFlags(nodes []AffixNode) []string {
	return collections.FlatMapSlice(nodes, func(node AffixNode) []string {
		af, ok := node.(AffixAlias)
		if !ok {
			return nil
		}
		return af.Aliases
	})
}
