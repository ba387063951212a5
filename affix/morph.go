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
	"strings"
)

// errMalformedMorphTag is the cause carried by a MorphTag ParseError when a
// token does not take the "key:value" shape at all (no colon found).
var errMalformedMorphTag = errors.New("expected \"key:value\"")

// parseMorphTags splits a whitespace-separated field of "key:value"
// annotations, as found trailing a PFX/SFX body row.
// An empty field yields a nil, not empty, slice so that callers can
// distinguish "no tags" from "zero-length tags" without an extra check.
func parseMorphTags(field string) ([]MorphTag, *ParseError) {
	fields := strings.Fields(field)
	if len(fields) == 0 {
		return nil, nil
	}
	tags := make([]MorphTag, 0, len(fields))
	for _, tok := range fields {
		key, value, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, newParseError(MorphTag{Tag: tok, Cause: errMalformedMorphTag})
		}
		tags = append(tags, MorphTag{Key: key, Value: value})
	}
	return tags, nil
}
