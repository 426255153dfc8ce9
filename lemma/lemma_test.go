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
	"path/filepath"
	"testing"

	"efclean/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestWordNet(t *testing.T) *WordNet {
	wn, err := LoadWordNet(filepath.Join("testdata", "wordnet"))
	require.NoError(t, err)
	return wn
}

func TestLoadWordNet(t *testing.T) {
	wn := loadTestWordNet(t)
	assert.Equal(t, 10, wn.NumLemmas())
}

func TestLoadWordNetMissingDir(t *testing.T) {
	_, err := LoadWordNet(filepath.Join("testdata", "nonexistent"))
	assert.Error(t, err)
}

func TestLemmatizeExceptions(t *testing.T) {
	wn := loadTestWordNet(t)
	assert.Equal(t, "goose", wn.Lemmatize("geese", Noun))
	assert.Equal(t, "woman", wn.Lemmatize("women", Noun))
	assert.Equal(t, "run", wn.Lemmatize("ran", Verb))
	assert.Equal(t, "good", wn.Lemmatize("better", Adjective))
}

func TestLemmatizeRules(t *testing.T) {
	wn := loadTestWordNet(t)
	assert.Equal(t, "house", wn.Lemmatize("houses", Noun))
	assert.Equal(t, "church", wn.Lemmatize("churches", Noun))
	assert.Equal(t, "observe", wn.Lemmatize("observing", Verb))
	assert.Equal(t, "observe", wn.Lemmatize("observed", Verb))
	assert.Equal(t, "large", wn.Lemmatize("larger", Adjective))
	assert.Equal(t, "run", wn.Lemmatize("run", Verb))
}

func TestLemmatizeUnknownWord(t *testing.T) {
	wn := loadTestWordNet(t)
	assert.Equal(t, "xyzzy", wn.Lemmatize("xyzzy", Noun))
	assert.Equal(t, "observing", wn.Lemmatize("observing", Noun))
	assert.Equal(t, []string{}, wn.Candidates("quickly", Noun))
}

func TestPosFromTag(t *testing.T) {
	pos, ok := PosFromTag("NNP")
	assert.True(t, ok)
	assert.Equal(t, Noun, pos)
	pos, _ = PosFromTag("VBG")
	assert.Equal(t, Verb, pos)
	pos, _ = PosFromTag("JJS")
	assert.Equal(t, Adjective, pos)
	pos, _ = PosFromTag("RB")
	assert.Equal(t, Adverb, pos)
	pos, ok = PosFromTag("IN")
	assert.False(t, ok)
	assert.Equal(t, DefaultPOS, pos)
	_, ok = PosFromTag("")
	assert.False(t, ok)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "observ", Stem("observe"))
	assert.Equal(t, "observ", Stem("observing"))
	assert.Equal(t, "run", Stem("running"))
}

func TestLemmatizeOrStem(t *testing.T) {
	validation := lexicon.NewVocabulary([]string{"run", "house"})
	lm := NewLemmatizer(loadTestWordNet(t), validation)
	assert.Equal(t, "observe", lm.LemmatizeOrStem("observing", "VBG"))
	// POS hint fails, default lemmatization succeeds
	assert.Equal(t, "house", lm.LemmatizeOrStem("houses", "VBZ"))
	// stem fallback accepted only for known stems
	assert.Equal(t, "run", lm.LemmatizeOrStem("running", "NN"))
	assert.Equal(t, "xyzzying", lm.LemmatizeOrStem("xyzzying", "NN"))
	assert.Equal(t, "run", lm.LemmatizeOrStem("ran", "VBD"))
}
