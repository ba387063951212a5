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

func TestRuleGroupRecognizerHappyPath(t *testing.T) {
	r := ruleGroupRecognizer(Suffix, "SFX")

	input := "SFX A Y 2\nSFX A 0 ed .\nSFX A y ied [^aeiou]y\nNEXT\n"
	nodes, residual, matched, err := r(input)
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{
		RuleGroup{
			Kind:         Suffix,
			Flag:         "A",
			CrossProduct: true,
			Rules: []AffixRule{
				{Strip: "", Add: "ed", Condition: "."},
				{Strip: "y", Add: "ied", Condition: "[^aeiou]y"},
			},
		},
	}, nodes)
	assert.Equal(t, "\nNEXT\n", residual)
}

func TestRuleGroupRecognizerMorphTags(t *testing.T) {
	r := ruleGroupRecognizer(Prefix, "PFX")

	input := "PFX B N 1\nPFX B 0 re . st:redo\n"
	nodes, _, matched, err := r(input)
	assert.True(t, matched)
	assert.Nil(t, err)
	group := nodes[0].(RuleGroup)
	assert.False(t, group.CrossProduct)
	assert.Equal(t, []MorphTag{{Key: "st", Value: "redo"}}, group.Rules[0].MorphTags)
}

func TestRuleGroupRecognizerFlagMismatch(t *testing.T) {
	r := ruleGroupRecognizer(Suffix, "SFX")

	_, _, matched, err := r("SFX A Y 1\nSFX Z 0 ed .\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, ok := err.Kind.(AffixFlagMismatch)
	assert.True(t, ok)
}

func TestRuleGroupRecognizerBadHeader(t *testing.T) {
	r := ruleGroupRecognizer(Suffix, "SFX")

	_, _, matched, err := r("SFX A maybe 1\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, ok := err.Kind.(AffixBody)
	assert.True(t, ok)
}
