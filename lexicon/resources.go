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
	"fmt"

	"efclean/merror"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/kljensen/snowball/english"
	"github.com/rs/zerolog/log"
)

// Sources specifies where lexical resources are loaded from.
type Sources struct {
	CorrectionsPath string
	ArchaicPath     string
	CitiesPath      string
	NLTKDataDir     string
	Filters         StopwordFilters
}

// Resources holds read-only lexical data shared by all the volume
// processing jobs of a process.
type Resources struct {
	// Validation confirms that a stemmed candidate is a real word form
	Validation *Vocabulary

	// Filter contains terms removed from output
	Filter *Vocabulary

	Spelling *CorrectionDict
	Archaic  *CorrectionDict

	categorySizes map[Category]int
}

// CategorySize returns the number of terms loaded for a category.
func (r *Resources) CategorySize(c Category) int {
	return r.categorySizes[c]
}

// Summary is a structured overview of the loaded resources
// suitable for startup reports.
type Summary struct {
	SpellingCorrections int              `json:"spellingCorrections"`
	ArchaicMappings     int              `json:"archaicMappings"`
	Categories          map[Category]int `json:"categories"`
	ValidationSize      int              `json:"validationSize"`
	FilterSize          int              `json:"filterSize"`
}

func (r *Resources) Summary() Summary {
	ans := Summary{
		SpellingCorrections: r.Spelling.Size(),
		ArchaicMappings:     r.Archaic.Size(),
		Categories:          make(map[Category]int, len(r.categorySizes)),
		ValidationSize:      r.Validation.Size(),
		FilterSize:          r.Filter.Size(),
	}
	for k, v := range r.categorySizes {
		ans.Categories[k] = v
	}
	return ans
}

func stemAll(words []string) []string {
	ans := make([]string, len(words))
	for i, w := range words {
		ans[i] = english.Stem(w, true)
	}
	return ans
}

func requireFile(path, desc string) error {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return fmt.Errorf("failed to check %s file %s: %w", desc, path, err)
	}
	if !isFile {
		return fmt.Errorf("%s file not found: %s", desc, path)
	}
	return nil
}

// NewResources builds resources from already loaded category lists.
// Validation vocabulary is the union of all the categories, filter
// vocabulary contains only the enabled ones.
func NewResources(
	categories map[Category][]string,
	filters StopwordFilters,
	spelling, archaic *CorrectionDict,
) *Resources {
	ans := &Resources{
		Spelling:      spelling,
		Archaic:       archaic,
		categorySizes: make(map[Category]int, len(categories)),
	}
	all := make([][]string, 0, len(categories))
	enabled := make([][]string, 0, len(categories))
	for _, c := range AllCategories {
		items, ok := categories[c]
		if !ok {
			continue
		}
		ans.categorySizes[c] = NewVocabulary(items).Size()
		all = append(all, items)
		if filters.Enabled(c) {
			enabled = append(enabled, items)
		}
	}
	ans.Validation = NewVocabulary(all...)
	ans.Filter = NewVocabulary(enabled...)
	if ans.Spelling == nil {
		ans.Spelling = NewCorrectionDict(nil)
	}
	if ans.Archaic == nil {
		ans.Archaic = NewCorrectionDict(nil)
	}
	return ans
}

// Load reads all the reference data. Any missing file is an error.
// Returned errors are of type merror.InputError.
func Load(src Sources) (*Resources, error) {
	ans, err := load(src)
	if err != nil {
		return nil, merror.InputError{Msg: "failed to load lexical resources", Err: err}
	}
	return ans, nil
}

func load(src Sources) (*Resources, error) {
	if err := requireFile(src.CorrectionsPath, "spelling corrections"); err != nil {
		return nil, err
	}
	if err := requireFile(src.ArchaicPath, "modern/archaic dictionary"); err != nil {
		return nil, err
	}
	if err := requireFile(src.CitiesPath, "world cities"); err != nil {
		return nil, err
	}
	nltk := NLTKData{Root: src.NLTKDataDir}
	if err := nltk.Validate(); err != nil {
		return nil, err
	}
	spelling, err := LoadCorrectionDict(src.CorrectionsPath)
	if err != nil {
		return nil, err
	}
	archaic, err := LoadCorrectionDict(src.ArchaicPath)
	if err != nil {
		return nil, err
	}
	cities, err := LoadCities(src.CitiesPath)
	if err != nil {
		return nil, err
	}
	names, err := nltk.Names()
	if err != nil {
		return nil, err
	}
	stopwords, err := nltk.Stopwords()
	if err != nil {
		return nil, err
	}
	words, err := nltk.Words()
	if err != nil {
		return nil, err
	}
	categories := map[Category][]string{
		CategoryCities:           cities,
		CategoryCountries:        Countries(),
		CategoryPeopleNames:      names,
		CategoryEnglishStopwords: stopwords,
		CategoryModernWords:      words,
		CategoryContinents:       Continents(),
		CategoryDaysMonths:       DaysMonths(),
		CategoryRomanNumerals:    RomanNumerals(MaxRomanNumeral),
		CategoryStems:            stemAll(words),
	}
	filters := src.Filters
	if filters == nil {
		filters = DefaultStopwordFilters()
	}
	ans := NewResources(categories, filters, spelling, archaic)
	log.Debug().
		Int("validationSize", ans.Validation.Size()).
		Int("filterSize", ans.Filter.Size()).
		Msg("lexical resources loaded")
	return ans, nil
}
