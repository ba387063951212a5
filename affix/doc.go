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

// Package affix implements a line-oriented recursive-descent parser for
// Hunspell-compatible affix files. It recognizes:
//
//   - Boolean, character, integer, string, and character-set directives
//     (e.g. COMPLEXPREFIXES, FORCEUCASE, MAXCPDSUGS, LANG, IGNORE)
//   - Counted table directives (AF, AM, REP, MAP, PHONE, BREAK,
//     COMPOUNDRULE, CHECKCOMPOUNDPATTERN, ICONV, OCONV)
//   - PFX/SFX rule groups, a specialized table whose header declares a flag,
//     a cross-product bit, and a row count, and whose body rows must each
//     quote the header's flag
//
// The parser does not evaluate rules, materialize a lexicon, or perform any
// I/O; it transforms affix-file text into an ordered sequence of AffixNode
// values or a single ParseError describing the first failure.
package affix
