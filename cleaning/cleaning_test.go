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
	"testing"

	"efclean/corpus"
	"efclean/lemma"
	"efclean/lexicon"

	"github.com/stretchr/testify/assert"
)

func TestRegroupSumsCollisions(t *testing.T) {
	tab := FreqTable[string]{"Foo": 2, "foo": 3, "bar": 1}
	ans := Regroup(tab, func(k string) string {
		if k == "Foo" {
			return "foo"
		}
		return k
	})
	assert.Equal(t, FreqTable[string]{"foo": 5, "bar": 1}, ans)
	assert.Equal(t, tab.Total(), ans.Total())
}

func TestConcatDisjointEqualsRegroup(t *testing.T) {
	a := FreqTable[string]{"x": 1, "y": 2}
	b := FreqTable[string]{"z": 4}
	merged := Concat(a, b)
	assert.Equal(t, FreqTable[string]{"x": 1, "y": 2, "z": 4}, merged)
	assert.Equal(t, merged, Regroup(merged, func(k string) string { return k }))
	assert.Equal(t, FreqTable[string]{"x": 2, "y": 2}, Concat(a, FreqTable[string]{"x": 1}))
}

func TestPartition(t *testing.T) {
	tab := FreqTable[string]{"a": 1, "b": 2, "c": 3}
	m, r := Partition(tab, func(k string) bool { return k == "b" })
	assert.Equal(t, FreqTable[string]{"b": 2}, m)
	assert.Equal(t, FreqTable[string]{"a": 1, "c": 3}, r)
}

func TestPOSTags(t *testing.T) {
	assert.Len(t, POSTags, 20)
	assert.True(t, IsAllowedPOS("VBG"))
	assert.True(t, IsAllowedPOS("NE"))
	assert.False(t, IsAllowedPOS("NNS"))
	assert.False(t, IsAllowedPOS("PRP"))
}

type testEnv struct {
	filter     []string
	spelling   map[string]string
	archaic    map[string]string
	lemmas     map[lemma.POS][]string
	exceptions map[lemma.POS]map[string]string
}

func (env testEnv) pipeline() *Pipeline {
	res := lexicon.NewResources(
		map[lexicon.Category][]string{
			lexicon.CategoryEnglishStopwords: env.filter,
		},
		nil,
		lexicon.NewCorrectionDict(env.spelling),
		lexicon.NewCorrectionDict(env.archaic),
	)
	wn := lemma.NewWordNet()
	for pos, items := range env.lemmas {
		for _, item := range items {
			wn.AddLemma(pos, item)
		}
	}
	for pos, items := range env.exceptions {
		for inflected, base := range items {
			wn.AddException(pos, inflected, base)
		}
	}
	return NewPipeline(res, lemma.NewLemmatizer(wn, res.Validation))
}

func TestProcessEndToEnd(t *testing.T) {
	p := testEnv{lemmas: map[lemma.POS][]string{lemma.Verb: {"observe"}}}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "Obſerving", POS: "VBG", Count: 3},
		{Surface: "obſerving", POS: "VBG", Count: 1},
		{Surface: "xx", POS: "NN", Count: 5},
	})
	assert.Equal(t, []StemCount{{Stem: "observ", Count: 4}}, ans)
}

func TestProcessFrequencyBoundary(t *testing.T) {
	p := testEnv{}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "river", POS: "NN", Count: 2},
		{Surface: "mountain", POS: "NN", Count: 1},
	})
	assert.Equal(t, []StemCount{{Stem: "river", Count: 2}}, ans)
}

func TestProcessLengthBoundary(t *testing.T) {
	p := testEnv{}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "ox", POS: "NN", Count: 9},
		{Surface: "cow", POS: "NN", Count: 3},
		{Surface: "c.o", POS: "NN", Count: 3},
	})
	assert.Equal(t, []StemCount{{Stem: "cow", Count: 3}}, ans)
}

func TestProcessPOSFilter(t *testing.T) {
	p := testEnv{}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "rivers", POS: "NNS", Count: 10},
		{Surface: "him", POS: "PRP", Count: 10},
	})
	assert.Empty(t, ans)
}

func TestProcessFilterDominatesValidation(t *testing.T) {
	p := testEnv{filter: []string{"london"}}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "London", POS: "NNP", Count: 7},
		{Surface: "river", POS: "NN", Count: 2},
	})
	assert.Equal(t, []StemCount{{Stem: "river", Count: 2}}, ans)
}

func TestProcessFilterAfterLemmatization(t *testing.T) {
	p := testEnv{
		filter:     []string{"woman"},
		lemmas:     map[lemma.POS][]string{lemma.Noun: {"woman"}},
		exceptions: map[lemma.POS]map[string]string{lemma.Noun: {"women": "woman"}},
	}.pipeline()
	ans := p.Process([]corpus.TokenRecord{{Surface: "women", POS: "NN", Count: 3}})
	assert.Empty(t, ans)

	ans = p.Process([]corpus.TokenRecord{
		{Surface: "women", POS: "NN", Count: 3},
		{Surface: "river", POS: "NN", Count: 2},
	})
	assert.Equal(t, []StemCount{{Stem: "river", Count: 2}}, ans)
}

func TestProcessSpellingCorrectionMerges(t *testing.T) {
	p := testEnv{spelling: map[string]string{"vpon": "upon", "riuer": "river"}}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "riuer", POS: "NN", Count: 1},
		{Surface: "river", POS: "NN", Count: 1},
		{Surface: "vpon", POS: "IN", Count: 3},
	})
	assert.Equal(t, []StemCount{{Stem: "upon", Count: 3}, {Stem: "river", Count: 2}}, ans)
}

func TestProcessArchaicMapping(t *testing.T) {
	p := testEnv{
		filter:  []string{"thee"},
		archaic: map[string]string{"colour": "color", "thou": "thee"},
	}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "colour", POS: "NN", Count: 2},
		{Surface: "color", POS: "NN", Count: 3},
		{Surface: "thou", POS: "NN", Count: 4},
	})
	assert.Equal(t, []StemCount{{Stem: "color", Count: 5}}, ans)
}

func TestProcessPOSMergeAfterLemma(t *testing.T) {
	p := testEnv{lemmas: map[lemma.POS][]string{
		lemma.Verb: {"walk"},
		lemma.Noun: {"walk"},
	}}.pipeline()
	ans := p.Process([]corpus.TokenRecord{
		{Surface: "walked", POS: "VBD", Count: 2},
		{Surface: "walk", POS: "NN", Count: 3},
	})
	assert.Equal(t, []StemCount{{Stem: "walk", Count: 5}}, ans)
}

func TestProcessEmpty(t *testing.T) {
	p := testEnv{}.pipeline()
	assert.Empty(t, p.Process(nil))
}
