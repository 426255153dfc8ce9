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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/czcorpus/cnc-gokit/fs"
)

// NLTKCorpusFiles lists the files (relative to the NLTK data root)
// required for loading lexical resources.
var NLTKCorpusFiles = []string{
	filepath.Join("corpora", "words", "en"),
	filepath.Join("corpora", "stopwords", "english"),
	filepath.Join("corpora", "names", "male.txt"),
	filepath.Join("corpora", "names", "female.txt"),
}

// NLTKData locates plain-text corpora within an NLTK data directory.
// Both the layout with the `corpora` subdirectory (as installed
// by nltk.downloader) and a flat layout are supported.
type NLTKData struct {
	Root string
}

func (nd NLTKData) resolve(rel string) string {
	p1 := filepath.Join(nd.Root, rel)
	if fs.PathExists(p1) {
		return p1
	}
	return filepath.Join(nd.Root, strings.TrimPrefix(rel, "corpora"+string(filepath.Separator)))
}

// CorpusPath returns an absolute path of a corpus file or directory
// specified relative to the `corpora` directory (e.g. "wordnet").
func (nd NLTKData) CorpusPath(rel string) string {
	return nd.resolve(filepath.Join("corpora", rel))
}

// Validate checks presence of all the required corpus files.
func (nd NLTKData) Validate() error {
	for _, rel := range NLTKCorpusFiles {
		path := nd.resolve(rel)
		isFile, err := fs.IsFile(path)
		if err != nil {
			return fmt.Errorf("failed to validate NLTK data: %w", err)
		}
		if !isFile {
			return fmt.Errorf("NLTK data file not found: %s", path)
		}
	}
	return nil
}

// readWordList reads a file with one term per line. Empty lines
// and lines starting with `#` are ignored, terms are lower-cased.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	defer f.Close()
	ans := make([]string, 0, 1000)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ans = append(ans, strings.ToLower(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return ans, nil
}

// Words returns the English dictionary word list (files `en`
// and, if present, `en-basic`).
func (nd NLTKData) Words() ([]string, error) {
	ans, err := readWordList(nd.CorpusPath(filepath.Join("words", "en")))
	if err != nil {
		return nil, err
	}
	basic := nd.CorpusPath(filepath.Join("words", "en-basic"))
	if fs.PathExists(basic) {
		tmp, err := readWordList(basic)
		if err != nil {
			return nil, err
		}
		ans = append(ans, tmp...)
	}
	return ans, nil
}

func (nd NLTKData) Stopwords() ([]string, error) {
	return readWordList(nd.CorpusPath(filepath.Join("stopwords", "english")))
}

// Names returns both male and female first names.
func (nd NLTKData) Names() ([]string, error) {
	male, err := readWordList(nd.CorpusPath(filepath.Join("names", "male.txt")))
	if err != nil {
		return nil, err
	}
	female, err := readWordList(nd.CorpusPath(filepath.Join("names", "female.txt")))
	if err != nil {
		return nil, err
	}
	return append(male, female...), nil
}
