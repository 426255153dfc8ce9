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

package corpus

import (
	"sort"
	"strings"
)

// TokenRecord is one distinct (surface, POS) pair observed
// in body text of a volume.
type TokenRecord struct {
	Surface string `json:"surface"`
	POS     string `json:"pos"`
	Count   int    `json:"count"`
}

// Document is a single volume of a corpus.
type Document interface {
	ID() string

	// Tokens extracts body text tokens of the document. Counts are
	// summed over pages and surface forms are case-folded.
	Tokens() ([]TokenRecord, error)
}

type tokenKey struct {
	surface string
	pos     string
}

// tokenAccumulator sums counts of case-folded (surface, POS) pairs.
type tokenAccumulator map[tokenKey]int

func (ta tokenAccumulator) add(surface, pos string, count int) {
	if count <= 0 {
		return
	}
	ta[tokenKey{surface: strings.ToLower(surface), pos: pos}] += count
}

func (ta tokenAccumulator) records() []TokenRecord {
	ans := make([]TokenRecord, 0, len(ta))
	for k, v := range ta {
		ans = append(ans, TokenRecord{Surface: k.surface, POS: k.pos, Count: v})
	}
	sort.Slice(ans, func(i, j int) bool {
		if ans[i].Surface != ans[j].Surface {
			return ans[i].Surface < ans[j].Surface
		}
		return ans[i].POS < ans[j].POS
	})
	return ans
}

// MemDocument is an in-memory document with already prepared
// token records.
type MemDocument struct {
	DocID   string
	Records []TokenRecord
}

func (md *MemDocument) ID() string {
	return md.DocID
}

// Tokens returns a copy of the records as they are
// (no case folding or merging is applied).
func (md *MemDocument) Tokens() ([]TokenRecord, error) {
	ans := make([]TokenRecord, len(md.Records))
	copy(ans, md.Records)
	return ans, nil
}
