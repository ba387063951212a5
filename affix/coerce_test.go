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

func TestBoolRecognizer(t *testing.T) {
	r := boolRecognizer("COMPLEXPREFIXES", ComplexPrefixes{})

	nodes, residual, matched, err := r("COMPLEXPREFIXES\nNEXT\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{ComplexPrefixes{}}, nodes)
	assert.Equal(t, "\nNEXT\n", residual)

	_, _, matched, err = r("COMPLEXPREFIXES garbage\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, isBadBool := err.Kind.(BadBool)
	assert.True(t, isBadBool)

	_, _, matched, _ = r("FULLSTRIP\n")
	assert.False(t, matched)
}

func TestIntRecognizer(t *testing.T) {
	r := intRecognizer("COMPOUNDMIN", func(v uint32) AffixNode { return CompoundMin{Value: v} })

	nodes, _, matched, err := r("COMPOUNDMIN 3\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{CompoundMin{Value: 3}}, nodes)

	_, _, matched, err = r("COMPOUNDMIN -1\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, isBadInt := err.Kind.(BadInt)
	assert.True(t, isBadInt)
}

func TestCharRecognizer(t *testing.T) {
	r := charRecognizer("CIRCUMFIX", func(c rune) AffixNode { return CircumfixFlag{Char: c} })

	nodes, _, matched, err := r("CIRCUMFIX X\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{CircumfixFlag{Char: 'X'}}, nodes)

	_, _, matched, err = r("CIRCUMFIX XY\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, isBadChar := err.Kind.(BadChar)
	assert.True(t, isBadChar)
}

func TestCharSetRecognizer(t *testing.T) {
	r := charSetRecognizer("IGNORE", func(rs []rune) AffixNode { return IgnoreChars{Chars: rs} })

	nodes, _, matched, err := r("IGNORE ̀́\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	ignore, ok := nodes[0].(IgnoreChars)
	assert.True(t, ok)
	assert.Equal(t, []rune("̀́"), ignore.Chars)
}

func TestKeyGroupRecognizer(t *testing.T) {
	r := keyGroupRecognizer("KEY")

	nodes, _, matched, err := r("KEY qwertyuiop|asdfghjkl|zxcvbnm\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{NeighborKeys{Groups: []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}}}, nodes)
}
