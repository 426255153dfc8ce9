// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of EFCLEAN.
//
//  EFCLEAN is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  EFCLEAN is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with EFCLEAN.  If not, see <https://www.gnu.org/licenses/>.

package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// glyphs maps OCR-confusable characters to ASCII letters
var glyphs = map[rune]rune{
	'º': 'o',
	'ª': 'a',
	'ſ': 's',
	'β': 'b',
}

var ligatures = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬅ", "ft",
	"ﬃ", "ffi",
	"ﬀ", "ff",
	"ﬄ", "ffl",
)

const maxPasses = 4

// Token cleans up a single surface token. Non-letters are removed,
// OCR glyphs are fixed, ligatures expanded and finally the string
// is NFKC-normalized. The order of the steps matters (e.g. NFKC
// would turn `ﬅ` into `st`).
// NFKC may produce characters the first steps would change
// (e.g. `ϐ` becomes `β`), so the steps repeat until the value
// is stable.
func Token(s string) string {
	ans := pass(s)
	for i := 1; i < maxPasses; i++ {
		next := pass(ans)
		if next == ans {
			break
		}
		ans = next
	}
	return ans
}

func pass(s string) string {
	var bld strings.Builder
	bld.Grow(len(s))
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if g, ok := glyphs[r]; ok {
			r = g
		}
		bld.WriteRune(r)
	}
	return norm.NFKC.String(ligatures.Replace(bld.String()))
}
