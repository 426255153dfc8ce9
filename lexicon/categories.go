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

// Category identifies one source list of terms the filter vocabulary
// can be built from.
type Category string

const (
	CategoryCities           Category = "cities"
	CategoryCountries        Category = "countries"
	CategoryPeopleNames      Category = "peopleNames"
	CategoryEnglishStopwords Category = "englishStopwords"
	CategoryModernWords      Category = "modernWords"
	CategoryContinents       Category = "continents"
	CategoryDaysMonths       Category = "daysMonths"
	CategoryRomanNumerals    Category = "romanNumerals"
	CategoryStems            Category = "stems"
)

// AllCategories lists categories in the order they are reported.
var AllCategories = []Category{
	CategoryCities,
	CategoryCountries,
	CategoryPeopleNames,
	CategoryEnglishStopwords,
	CategoryModernWords,
	CategoryContinents,
	CategoryDaysMonths,
	CategoryRomanNumerals,
	CategoryStems,
}

func (c Category) Validate() bool {
	for _, v := range AllCategories {
		if v == c {
			return true
		}
	}
	return false
}

// StopwordFilters toggles individual categories of the filter
// vocabulary. A category missing from the map is enabled.
type StopwordFilters map[Category]bool

func (sf StopwordFilters) Enabled(c Category) bool {
	v, ok := sf[c]
	return !ok || v
}

// DefaultStopwordFilters enables all the categories.
func DefaultStopwordFilters() StopwordFilters {
	ans := make(StopwordFilters, len(AllCategories))
	for _, c := range AllCategories {
		ans[c] = true
	}
	return ans
}
