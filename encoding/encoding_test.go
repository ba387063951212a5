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

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	testCases := []struct {
		raw     string
		want    EncodingName
		wantErr bool
	}{
		{raw: "UTF-8", want: "UTF-8"},
		{raw: "ISO8859-1", want: "ISO8859-1"},
		{raw: "ISO8859-15", want: "ISO8859-15"},
		{raw: "KOI8-R", want: "KOI8-R"},
		{raw: "cp1251", want: "cp1251"},
		{raw: "ISCII-DEVANAGARI", want: "ISCII-DEVANAGARI"},
		{raw: "long", want: FlagLong},
		{raw: "num", want: FlagNum},
		{raw: "not-a-real-charset", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := Create(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsFlagConvention(t *testing.T) {
	assert.True(t, FlagLong.IsFlagConvention())
	assert.True(t, FlagNum.IsFlagConvention())
	assert.False(t, EncodingName("UTF-8").IsFlagConvention())
}
