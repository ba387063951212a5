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

func TestTableRecognizerHappyPath(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	input := "REP 2\nREP ch k\nREP a_b c\nNEXT\n"
	nodes, residual, matched, err := r(input)
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{
		Replacement{Conversions: []Conversion{
			{From: "ch", To: "k"},
			{From: "a b", To: "c"},
		}},
	}, nodes)
	assert.Equal(t, "\nNEXT\n", residual)
}

func TestTableRecognizerZeroRows(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	nodes, residual, matched, err := r("REP 0\nNEXT\n")
	assert.True(t, matched)
	assert.Nil(t, err)
	assert.Equal(t, []AffixNode{Replacement{}}, nodes)
	assert.Equal(t, "\nNEXT\n", residual)
}

func TestTableRecognizerShortBody(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	_, _, matched, err := r("REP 2\nREP ch k\n")
	assert.True(t, matched)
	assert.Error(t, err)
	kind, ok := err.Kind.(TableCount)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), kind.Expected)
	assert.Equal(t, uint32(1), kind.Received)
}

func TestTableRecognizerMalformedRow(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	_, _, matched, err := r("REP 1\nREP onlyonefield\n")
	assert.True(t, matched)
	assert.Error(t, err)
	_, ok := err.Kind.(AffixBody)
	assert.True(t, ok)
}

func TestTableRecognizerRowKeyMismatch(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	_, _, matched, err := r("REP 2\nREP ch k\nNOTREP a b\n")
	assert.True(t, matched)
	assert.Error(t, err)
	kind, ok := err.Kind.(TableCount)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), kind.Expected)
	assert.Equal(t, uint32(1), kind.Received)
}

func TestTableRecognizerKeyMismatch(t *testing.T) {
	r := tableRecognizer("REP", conversionRowParser(true), func(rows []Conversion) AffixNode { return Replacement{Conversions: rows} })

	_, _, matched, err := r("MAP 1\nMAP a\n")
	assert.False(t, matched)
	assert.Nil(t, err)
}
