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

// conversionRowParser builds the row parser used by the REP, ICONV, and
// OCONV tables, which all share the two-column "from to" grammar. REP rows
// alone allow whitespace within a field, spelled "_" in the source row, to
// match Hunspell's own convention; allowUnderscoreSpace is true only for REP.
func conversionRowParser(allowUnderscoreSpace bool) func(uint32, string) (Conversion, *ParseError) {
	return func(_ uint32, row string) (Conversion, *ParseError) {
		fields := strings.Fields(row)
		if len(fields) != 2 {
			return Conversion{}, newParseError(AffixBody{Row: row})
		}
		from, to := fields[0], fields[1]
		if allowUnderscoreSpace {
			from = strings.ReplaceAll(from, "_", " ")
			to = strings.ReplaceAll(to, "_", " ")
		}
		return Conversion{From: from, To: to}, nil
	}
}
