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
	"path/filepath"
	"strings"
	"testing"

	"efclean/merror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRomanNumeralKnownValues(t *testing.T) {
	assert.Equal(t, "n", RomanNumeral(0))
	assert.Equal(t, "i", RomanNumeral(1))
	assert.Equal(t, "iv", RomanNumeral(4))
	assert.Equal(t, "ix", RomanNumeral(9))
	assert.Equal(t, "xl", RomanNumeral(40))
	assert.Equal(t, "xcix", RomanNumeral(99))
	assert.Equal(t, "cdxliv", RomanNumeral(444))
	assert.Equal(t, "d", RomanNumeral(500))
	assert.Equal(t, "mcmlxxxiv", RomanNumeral(1984))
}

func romanToInt(s string) int {
	vals := map[byte]int{'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000}
	ans := 0
	for i := 0; i < len(s); i++ {
		v := vals[s[i]]
		if i+1 < len(s) && vals[s[i+1]] > v {
			ans -= v
		} else {
			ans += v
		}
	}
	return ans
}

func TestRomanNumeralRange(t *testing.T) {
	nums := RomanNumerals(MaxRomanNumeral)
	assert.Len(t, nums, MaxRomanNumeral+1)
	for i := 1; i <= MaxRomanNumeral; i++ {
		r := RomanNumeral(i)
		assert.Equal(t, strings.ToLower(r), r)
		assert.Equal(t, i, romanToInt(r), "numeral %s", r)
		assert.Equal(t, r, nums[i])
	}
}

func TestLoadCorrectionDict(t *testing.T) {
	cd, err := LoadCorrectionDict(filepath.Join("testdata", "corrections.csv"))
	require.NoError(t, err)
	assert.Equal(t, 3, cd.Size())
	v, ok := cd.Lookup("obferve")
	assert.True(t, ok)
	assert.Equal(t, "observe", v)
	v, _ = cd.Lookup("vpon")
	assert.Equal(t, "upon", v)
	_, ok = cd.Lookup("emptyval")
	assert.False(t, ok)
	assert.Equal(t, "river", cd.Correct("river"))
	assert.True(t, cd.Has("which"))
}

func TestLoadCorrectionDictStandColumns(t *testing.T) {
	cd, err := LoadCorrectionDict(filepath.Join("testdata", "ma.csv"))
	require.NoError(t, err)
	v, ok := cd.Lookup("thou")
	assert.True(t, ok)
	assert.Equal(t, "you", v)
}

func TestLoadCorrectionDictHeaderWithBOM(t *testing.T) {
	cd, err := LoadCorrectionDict(filepath.Join("testdata", "ma_bom.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, cd.Size())
	v, ok := cd.Lookup("hath")
	assert.True(t, ok)
	assert.Equal(t, "has", v)
}

func TestLoadCorrectionDictMissingFile(t *testing.T) {
	_, err := LoadCorrectionDict(filepath.Join("testdata", "nonexistent.csv"))
	assert.Error(t, err)
}

func TestNilCorrectionDict(t *testing.T) {
	var cd *CorrectionDict
	_, ok := cd.Lookup("foo")
	assert.False(t, ok)
	assert.Equal(t, "foo", cd.Correct("foo"))
	assert.Equal(t, 0, cd.Size())
}

func TestLoadCities(t *testing.T) {
	cities, err := LoadCities(filepath.Join("testdata", "cities.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"london", "paris", "rio de janeiro"}, cities)
}

func TestCountries(t *testing.T) {
	c := Countries()
	assert.Len(t, c, 249)
	assert.Contains(t, c, "france")
	assert.Contains(t, c, "united kingdom")
}

func TestStopwordFiltersDefault(t *testing.T) {
	var sf StopwordFilters
	assert.True(t, sf.Enabled(CategoryCities))
	sf = StopwordFilters{CategoryCities: false}
	assert.False(t, sf.Enabled(CategoryCities))
	assert.True(t, sf.Enabled(CategoryStems))
	assert.Len(t, DefaultStopwordFilters(), 9)
}

func testSources() Sources {
	return Sources{
		CorrectionsPath: filepath.Join("testdata", "corrections.csv"),
		ArchaicPath:     filepath.Join("testdata", "ma.csv"),
		CitiesPath:      filepath.Join("testdata", "cities.csv"),
		NLTKDataDir:     filepath.Join("testdata", "nltk_data"),
	}
}

func TestLoad(t *testing.T) {
	res, err := Load(testSources())
	require.NoError(t, err)
	assert.True(t, res.Filter.Contains("london"))
	assert.True(t, res.Filter.Contains("john"))
	assert.True(t, res.Filter.Contains("mary"))
	assert.True(t, res.Filter.Contains("the"))
	assert.True(t, res.Filter.Contains("observ"))
	assert.True(t, res.Filter.Contains("xiv"))
	assert.True(t, res.Filter.Contains("n"))
	assert.True(t, res.Filter.Contains("monday"))
	assert.True(t, res.Filter.Contains("europe"))
	assert.False(t, res.Filter.Contains("# male names"))
	assert.Equal(t, 3, res.CategorySize(CategoryModernWords))
	assert.Equal(t, 501, res.CategorySize(CategoryRomanNumerals))
	sm := res.Summary()
	assert.Equal(t, 3, sm.SpellingCorrections)
	assert.Equal(t, 2, sm.ArchaicMappings)
}

func TestLoadDisabledCategory(t *testing.T) {
	src := testSources()
	src.Filters = StopwordFilters{CategoryCities: false}
	res, err := Load(src)
	require.NoError(t, err)
	assert.False(t, res.Filter.Contains("paris"))
	assert.True(t, res.Validation.Contains("paris"))
}

func TestLoadMissingNLTK(t *testing.T) {
	src := testSources()
	src.NLTKDataDir = filepath.Join("testdata", "nonexistent")
	_, err := Load(src)
	var inputErr merror.InputError
	assert.ErrorAs(t, err, &inputErr)
}
