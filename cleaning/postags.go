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

const (
	// MinWordLength - normalized tokens must be strictly longer
	MinWordLength = 2

	// MinWordFrequency - minimum summed count of a (surface, POS)
	// group within a volume
	MinWordFrequency = 2
)

// POSTags is the allow-list of Penn Treebank tags. Tokens with
// other tags are discarded.
var POSTags = []string{
	"NE", "NN", "NNP", "NNPS",
	"JJ", "JJS", "JJR",
	"IN", "DT",
	"VB", "VBP", "VBZ", "VBD", "VBN", "VBG",
	"RB", "RBR", "RBS", "RP",
	"CC",
}

var posTagSet = func() map[string]struct{} {
	ans := make(map[string]struct{}, len(POSTags))
	for _, t := range POSTags {
		ans[t] = struct{}{}
	}
	return ans
}()

func IsAllowedPOS(tag string) bool {
	_, ok := posTagSet[tag]
	return ok
}
