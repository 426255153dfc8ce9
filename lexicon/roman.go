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

package lexicon

import "strings"

const (
	// MaxRomanNumeral is the highest numeral added to the vocabularies
	MaxRomanNumeral = 500
)

type romanSymbol struct {
	value  int
	symbol string
}

var romanSymbols = []romanSymbol{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"},
	{1, "i"},
}

// RomanNumeral converts a non-negative integer into a lowercase
// Roman numeral using the subtractive notation. Zero is encoded
// as "n" (nulla). Negative values produce an empty string.
func RomanNumeral(num int) string {
	if num == 0 {
		return "n"
	}
	var ans strings.Builder
	for _, rs := range romanSymbols {
		for num >= rs.value {
			ans.WriteString(rs.symbol)
			num -= rs.value
		}
	}
	return ans.String()
}

// RomanNumerals returns numerals for all the values from 0
// up to maxVal (inclusive).
func RomanNumerals(maxVal int) []string {
	ans := make([]string, 0, maxVal+1)
	for i := 0; i <= maxVal; i++ {
		ans = append(ans, RomanNumeral(i))
	}
	return ans
}
