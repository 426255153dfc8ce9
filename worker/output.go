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

package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"efclean/cleaning"
)

// FormatBagOfWords writes each stem `count` times, each
// occurrence followed by a space.
func FormatBagOfWords(stems []cleaning.StemCount) string {
	var bld strings.Builder
	for _, s := range stems {
		for i := 0; i < s.Count; i++ {
			bld.WriteString(s.Stem)
			bld.WriteByte(' ')
		}
	}
	return bld.String()
}

// writeFileAtomic writes data to a temporary file within the target
// directory and renames it to the final name so no partial output
// is ever visible.
func writeFileAtomic(path string, data string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".efclean-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions of %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output to %s: %w", path, err)
	}
	return nil
}
