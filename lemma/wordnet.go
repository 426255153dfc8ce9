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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// POS is a WordNet part of speech
type POS string

const (
	Noun      POS = "n"
	Verb      POS = "v"
	Adjective POS = "a"
	Adverb    POS = "r"

	// DefaultPOS is used when a tag provides no usable hint
	DefaultPOS = Noun
)

var wordNetFiles = map[POS]string{
	Noun:      "noun",
	Verb:      "verb",
	Adjective: "adj",
	Adverb:    "adv",
}

type substitution struct {
	suffix      string
	replacement string
}

var detachmentRules = map[POS][]substitution{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adverb: {},
}

// WordNet is a morphological lemmatizer based on WordNet database
// files (lemma indices and exception lists). It is read-only once
// loaded.
type WordNet struct {
	lemmas     map[POS]map[string]struct{}
	exceptions map[POS]map[string][]string
}

// NewWordNet creates an empty instance which can be filled
// via AddLemma and AddException.
func NewWordNet() *WordNet {
	ans := &WordNet{
		lemmas:     make(map[POS]map[string]struct{}),
		exceptions: make(map[POS]map[string][]string),
	}
	for pos := range wordNetFiles {
		ans.lemmas[pos] = make(map[string]struct{})
		ans.exceptions[pos] = make(map[string][]string)
	}
	return ans
}

func (wn *WordNet) AddLemma(pos POS, lemma string) {
	wn.lemmas[pos][lemma] = struct{}{}
}

func (wn *WordNet) AddException(pos POS, inflected string, bases ...string) {
	wn.exceptions[pos][inflected] = append(wn.exceptions[pos][inflected], bases...)
}

func (wn *WordNet) NumLemmas() int {
	ans := 0
	for _, v := range wn.lemmas {
		ans += len(v)
	}
	return ans
}

func (wn *WordNet) applyRules(pos POS, forms []string) []string {
	ans := make([]string, 0, len(forms))
	for _, form := range forms {
		for _, sub := range detachmentRules[pos] {
			if strings.HasSuffix(form, sub.suffix) {
				ans = append(ans, form[:len(form)-len(sub.suffix)]+sub.replacement)
			}
		}
	}
	return ans
}

func (wn *WordNet) filterForms(pos POS, forms []string) []string {
	ans := make([]string, 0, len(forms))
	seen := make(map[string]struct{}, len(forms))
	for _, form := range forms {
		if _, ok := wn.lemmas[pos][form]; !ok {
			continue
		}
		if _, ok := seen[form]; ok {
			continue
		}
		seen[form] = struct{}{}
		ans = append(ans, form)
	}
	return ans
}

// Candidates returns all the base forms of the word for the POS
// in the order they were found.
func (wn *WordNet) Candidates(form string, pos POS) []string {
	if exc, ok := wn.exceptions[pos][form]; ok {
		return wn.filterForms(pos, append([]string{form}, exc...))
	}
	forms := wn.applyRules(pos, []string{form})
	if ans := wn.filterForms(pos, append([]string{form}, forms...)); len(ans) > 0 {
		return ans
	}
	for len(forms) > 0 {
		forms = wn.applyRules(pos, forms)
		if ans := wn.filterForms(pos, forms); len(ans) > 0 {
			return ans
		}
	}
	return []string{}
}

// Lemmatize returns the shortest base form of the word.
// If there is none, the word itself is returned.
func (wn *WordNet) Lemmatize(word string, pos POS) string {
	cands := wn.Candidates(word, pos)
	if len(cands) == 0 {
		return word
	}
	ans := cands[0]
	for _, c := range cands[1:] {
		if len(c) < len(ans) {
			ans = c
		}
	}
	return ans
}

func readLines(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		fn(sc.Text())
	}
	return sc.Err()
}

// LoadWordNet loads WordNet database files from a directory
// (typically `nltk_data/corpora/wordnet`).
func LoadWordNet(dir string) (*WordNet, error) {
	ans := NewWordNet()
	for pos, name := range wordNetFiles {
		idxPath := filepath.Join(dir, "index."+name)
		err := readLines(idxPath, func(line string) {
			// license lines start with a space
			if line == "" || line[0] == ' ' {
				return
			}
			if i := strings.IndexByte(line, ' '); i > 0 {
				ans.AddLemma(pos, line[:i])
			}
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load WordNet index %s: %w", idxPath, err)
		}
		excPath := filepath.Join(dir, name+".exc")
		err = readLines(excPath, func(line string) {
			items := strings.Fields(line)
			if len(items) < 2 {
				return
			}
			ans.AddException(pos, items[0], items[1:]...)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load WordNet exceptions %s: %w", excPath, err)
		}
	}
	return ans, nil
}
