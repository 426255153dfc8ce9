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

// Vocabulary is a read-only set of lower-cased terms. Once built,
// it can be shared by any number of goroutines without locking.
type Vocabulary struct {
	terms map[string]struct{}
}

func (v *Vocabulary) Contains(term string) bool {
	if v == nil {
		return false
	}
	_, ok := v.terms[term]
	return ok
}

func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// NewVocabulary creates a vocabulary as a union of provided term lists.
func NewVocabulary(lists ...[]string) *Vocabulary {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	ans := &Vocabulary{terms: make(map[string]struct{}, size)}
	for _, l := range lists {
		for _, t := range l {
			ans.terms[t] = struct{}{}
		}
	}
	return ans
}
