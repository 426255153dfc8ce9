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

// FreqTable maps a token identity to its aggregated count.
type FreqTable[K comparable] map[K]int

// Total returns the sum of all the counts.
func (ft FreqTable[K]) Total() int {
	var ans int
	for _, v := range ft {
		ans += v
	}
	return ans
}

// Regroup re-keys the table using keyFn. Counts of colliding keys
// are summed. This is the only way how tables are re-keyed within
// the pipeline.
func Regroup[K comparable, N comparable](table FreqTable[K], keyFn func(K) N) FreqTable[N] {
	ans := make(FreqTable[N], len(table))
	for k, v := range table {
		ans[keyFn(k)] += v
	}
	return ans
}

// Filter returns a new table with entries for which keep returns true.
func Filter[K comparable](table FreqTable[K], keep func(k K, count int) bool) FreqTable[K] {
	ans := make(FreqTable[K], len(table))
	for k, v := range table {
		if keep(k, v) {
			ans[k] = v
		}
	}
	return ans
}

// Partition splits the table into entries matching the predicate
// and the rest.
func Partition[K comparable](table FreqTable[K], pred func(k K) bool) (FreqTable[K], FreqTable[K]) {
	matching := make(FreqTable[K])
	rest := make(FreqTable[K])
	for k, v := range table {
		if pred(k) {
			matching[k] = v

		} else {
			rest[k] = v
		}
	}
	return matching, rest
}

// Concat merges tables, counts of colliding keys are summed.
func Concat[K comparable](tables ...FreqTable[K]) FreqTable[K] {
	size := 0
	for _, t := range tables {
		size += len(t)
	}
	ans := make(FreqTable[K], size)
	for _, t := range tables {
		for k, v := range t {
			ans[k] += v
		}
	}
	return ans
}
