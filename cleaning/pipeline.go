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

package cleaning

import (
	"sort"
	"strings"
	"unicode/utf8"

	"efclean/corpus"
	"efclean/lemma"
	"efclean/lexicon"
	"efclean/normalize"
)

// Lemmatizer reduces a (word, POS tag) pair to a root form.
type Lemmatizer interface {
	LemmatizeOrStem(word, tag string) string
}

type surfacePOS struct {
	surface string
	pos     string
}

// StemCount is a final output entry.
type StemCount struct {
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}

// Pipeline transforms raw volume tokens into final stems with
// counts. It holds only read-only data and can be shared among
// goroutines.
type Pipeline struct {
	resources  *lexicon.Resources
	lemmatizer Lemmatizer
}

func (p *Pipeline) filtered(term string) bool {
	return p.resources.Filter.Contains(term)
}

// Process runs all the cleaning steps over the tokens of one volume.
// The result is sorted by descending count (and by stem for equal
// counts).
func (p *Pipeline) Process(tokens []corpus.TokenRecord) []StemCount {
	// POS filter
	raw := make(FreqTable[surfacePOS], len(tokens))
	for _, t := range tokens {
		if t.Count <= 0 || !IsAllowedPOS(t.POS) {
			continue
		}
		raw[surfacePOS{surface: t.Surface, pos: t.POS}] += t.Count
	}

	// normalization and length filter
	normalized := Regroup(raw, func(k surfacePOS) surfacePOS {
		return surfacePOS{surface: strings.ToLower(normalize.Token(k.surface)), pos: k.pos}
	})
	normalized = Filter(normalized, func(k surfacePOS, _ int) bool {
		return utf8.RuneCountInString(k.surface) > MinWordLength
	})

	// spelling correction
	corrected := Regroup(normalized, func(k surfacePOS) surfacePOS {
		return surfacePOS{surface: p.resources.Spelling.Correct(k.surface), pos: k.pos}
	})

	// frequency and pre-lemma stopword filter
	corrected = Filter(corrected, func(k surfacePOS, count int) bool {
		return count >= MinWordFrequency && !p.filtered(k.surface)
	})

	// lemmatization (POS is dropped here)
	lemmas := Regroup(corrected, func(k surfacePOS) string {
		return p.lemmatizer.LemmatizeOrStem(k.surface, k.pos)
	})
	lemmas = Filter(lemmas, func(k string, _ int) bool {
		return !p.filtered(k)
	})

	// archaic terms
	archaic, modern := Partition(lemmas, p.resources.Archaic.Has)
	archaic = Regroup(archaic, p.resources.Archaic.Correct)
	archaic = Filter(archaic, func(k string, _ int) bool {
		return !p.filtered(k)
	})

	stems := Regroup(Concat(modern, archaic), lemma.Stem)
	return sortedStems(stems)
}

func sortedStems(table FreqTable[string]) []StemCount {
	ans := make([]StemCount, 0, len(table))
	for k, v := range table {
		ans = append(ans, StemCount{Stem: k, Count: v})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Count != ans[j].Count {
			return ans[i].Count > ans[j].Count
		}
		return ans[i].Stem < ans[j].Stem
	})
	return ans
}

func NewPipeline(resources *lexicon.Resources, lemmatizer Lemmatizer) *Pipeline {
	return &Pipeline{
		resources:  resources,
		lemmatizer: lemmatizer,
	}
}
