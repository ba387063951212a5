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

// errPhoneticFieldCount is the cause carried by a PhoneticError when a
// PHONE row does not hold exactly a pattern and a replacement.
var errPhoneticFieldCount = errors.New("expected exactly two fields: pattern and replacement")

// parsePhoneticRow parses one row of a PHONE table: a metaphone-style
// pattern and its phonetic replacement, e.g. "AA* _".
func parsePhoneticRow(_ uint32, row string) (PhoneticRule, *ParseError) {
	fields := strings.Fields(row)
	if len(fields) != 2 {
		return PhoneticRule{}, newParseError(PhoneticError{Row: row, Cause: errPhoneticFieldCount})
	}
	return PhoneticRule{Pattern: fields[0], Replacement: fields[1]}, nil
}
