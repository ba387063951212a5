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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNoIssues(t *testing.T) {
	nodes, err := Parse("TRY esianrtolc\nBREAK 1\nBREAK -\n")
	assert.NoError(t, err)
	assert.Empty(t, Validate(nodes))
}

func TestValidateDuplicateIgnoreChar(t *testing.T) {
	nodes := []AffixNode{IgnoreChars{Chars: []rune("aeioua")}}
	errs := Validate(nodes)
	assert.Len(t, errs, 1)
	kind, ok := errs[0].Kind.(DuplicateEntry)
	assert.True(t, ok)
	assert.Equal(t, "IGNORE", kind.Directive)
	assert.Equal(t, "a", kind.Value)
}

func TestValidateDuplicateBreakSeparator(t *testing.T) {
	nodes := []AffixNode{
		BreakSeparator{Values: []string{"-", "_", "-"}},
	}
	errs := Validate(nodes)
	assert.Len(t, errs, 1)
	kind := errs[0].Kind.(DuplicateEntry)
	assert.Equal(t, "BREAK", kind.Directive)
	assert.Equal(t, "-", kind.Value)
}

func TestValidateDuplicateAFFlags(t *testing.T) {
	nodes := []AffixNode{
		AffixAlias{Aliases: []string{"AB", "CD", "AB"}},
	}
	errs := Validate(nodes)
	assert.Len(t, errs, 1)
	kind := errs[0].Kind.(DuplicateEntry)
	assert.Equal(t, "AF", kind.Directive)
	assert.Equal(t, "AB", kind.Value)
}
