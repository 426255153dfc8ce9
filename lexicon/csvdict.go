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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	dictKeyColumns   = []string{"orig", "lemma"}
	dictValueColumns = []string{"stand", "correct_spelling"}
)

// CorrectionDict maps an original (misspelled or archaic) term
// to its standardized spelling. The dictionary is read-only once loaded.
type CorrectionDict struct {
	entries map[string]string
}

// Lookup returns the standardized spelling of the term. The second
// returned value is false if there is no entry for the term.
func (cd *CorrectionDict) Lookup(term string) (string, bool) {
	if cd == nil {
		return "", false
	}
	v, ok := cd.entries[term]
	return v, ok
}

// Correct returns the standardized spelling of the term or the term
// itself if the dictionary does not contain it.
func (cd *CorrectionDict) Correct(term string) string {
	if v, ok := cd.Lookup(term); ok {
		return v
	}
	return term
}

func (cd *CorrectionDict) Has(term string) bool {
	_, ok := cd.Lookup(term)
	return ok
}

func (cd *CorrectionDict) Size() int {
	if cd == nil {
		return 0
	}
	return len(cd.entries)
}

// NewCorrectionDict creates a dictionary from already prepared
// entries. Keys and values are lower-cased.
func NewCorrectionDict(entries map[string]string) *CorrectionDict {
	ans := &CorrectionDict{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		ans.entries[strings.ToLower(k)] = strings.ToLower(v)
	}
	return ans
}

func findColumn(header []string, candidates []string) int {
	for _, c := range candidates {
		for i, h := range header {
			if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == c {
				return i
			}
		}
	}
	return -1
}

func openCSV(path string) (*csv.Reader, *os.File, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	rdr := csv.NewReader(f)
	rdr.FieldsPerRecord = -1
	rdr.LazyQuotes = true
	header, err := rdr.Read()
	if err != nil {
		f.Close()
		return nil, nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return rdr, f, header, nil
}

// LoadCorrectionDict loads a two-column correction table. The key
// column is named `orig` (or `lemma`), the value column `stand`
// (or `correct_spelling`). For duplicate keys, the first row wins.
// Rows with an empty key or value are ignored.
func LoadCorrectionDict(path string) (*CorrectionDict, error) {
	rdr, f, header, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	keyIdx := findColumn(header, dictKeyColumns)
	valIdx := findColumn(header, dictValueColumns)
	if keyIdx < 0 || valIdx < 0 {
		return nil, fmt.Errorf(
			"failed to load %s: missing columns (expected one of %v and one of %v)",
			path, dictKeyColumns, dictValueColumns)
	}
	ans := &CorrectionDict{entries: make(map[string]string)}
	for {
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if keyIdx >= len(row) || valIdx >= len(row) {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(row[keyIdx]))
		v := strings.ToLower(strings.TrimSpace(row[valIdx]))
		if k == "" || v == "" {
			continue
		}
		if _, ok := ans.entries[k]; !ok {
			ans.entries[k] = v
		}
	}
	return ans, nil
}

// LoadCities reads the `name` column of a world cities table.
func LoadCities(path string) ([]string, error) {
	rdr, f, header, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	nameIdx := findColumn(header, []string{"name"})
	if nameIdx < 0 {
		return nil, fmt.Errorf("failed to load %s: missing column `name`", path)
	}
	ans := make([]string, 0, 1000)
	for {
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		if nameIdx >= len(row) {
			continue
		}
		if name := strings.ToLower(strings.TrimSpace(row[nameIdx])); name != "" {
			ans = append(ans, name)
		}
	}
	return ans, nil
}
