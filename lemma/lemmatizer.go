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

package lemma

import (
	"efclean/lexicon"

	"github.com/kljensen/snowball/english"
)

// Stem returns the Snowball (Porter2) English stem of the word.
// Stop words are stemmed too.
func Stem(word string) string {
	return english.Stem(word, true)
}

// PosFromTag maps a Penn Treebank tag to a WordNet POS.
// The second returned value is false for tags without
// a usable hint (the default POS is returned then).
func PosFromTag(tag string) (POS, bool) {
	if tag == "" {
		return DefaultPOS, false
	}
	switch tag[0] {
	case 'N':
		return Noun, true
	case 'V':
		return Verb, true
	case 'J':
		return Adjective, true
	case 'R':
		return Adverb, true
	}
	return DefaultPOS, false
}

// Lemmatizer reduces a word with its POS tag to a single root form.
type Lemmatizer struct {
	wordNet    *WordNet
	validation *lexicon.Vocabulary
}

// LemmatizeOrStem lemmatizes the word using its POS tag. If that
// has no effect, lemmatization without the POS hint is tried.
// If the word is still unchanged, its stem is used but only if it
// is a known word form.
func (lm *Lemmatizer) LemmatizeOrStem(word, tag string) string {
	pos, _ := PosFromTag(tag)
	ans := lm.wordNet.Lemmatize(word, pos)
	if ans == word {
		ans = lm.wordNet.Lemmatize(word, DefaultPOS)
	}
	if ans == word {
		if stem := Stem(word); lm.validation.Contains(stem) {
			return stem
		}
	}
	return ans
}

func NewLemmatizer(wordNet *WordNet, validation *lexicon.Vocabulary) *Lemmatizer {
	if wordNet == nil {
		wordNet = NewWordNet()
	}
	return &Lemmatizer{
		wordNet:    wordNet,
		validation: validation,
	}
}
