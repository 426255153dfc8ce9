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
	"path/filepath"
	"strings"
)

const (
	efExtBz2  = ".json.bz2"
	efExtJSON = ".json"
)

var (
	fileToIDReplacer   = strings.NewReplacer("+", ":", ",", ".", "=", "/")
	idToOutputReplacer = strings.NewReplacer(":", "+", "/", "=")
)

// IsEFFilename tests whether the file name looks like
// an Extracted Features file.
func IsEFFilename(name string) bool {
	return strings.HasSuffix(name, efExtBz2) || strings.HasSuffix(name, efExtJSON)
}

// VolumeIDFromFilename decodes a volume identifier from
// an Extracted Features file name (e.g. `mdp.39015+123=abc.json.bz2`
// => `mdp.39015:123/abc`).
func VolumeIDFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, efExtBz2)
	name = strings.TrimSuffix(name, efExtJSON)
	return fileToIDReplacer.Replace(name)
}

// OutputFilename returns a flat file name for the cleaned data
// of a volume.
func OutputFilename(volumeID string) string {
	return idToOutputReplacer.Replace(volumeID) + ".txt"
}
