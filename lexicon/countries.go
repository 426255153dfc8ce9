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

import (
	_ "embed"
	"strings"
)

//go:embed countries.txt
var countriesData string

var (
	continents = []string{"africa", "asia", "europe", "america", "australia", "antartica"}

	days = []string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}

	months = []string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	}
)

// Countries returns lower-cased ISO 3166 short country names.
func Countries() []string {
	lines := strings.Split(countriesData, "\n")
	ans := make([]string, 0, len(lines))
	for _, line := range lines {
		if v := strings.TrimSpace(line); v != "" {
			ans = append(ans, v)
		}
	}
	return ans
}

func Continents() []string {
	return append([]string{}, continents...)
}

// DaysMonths returns weekday names and month abbreviations.
func DaysMonths() []string {
	ans := make([]string, 0, len(days)+len(months))
	ans = append(ans, days...)
	return append(ans, months...)
}
