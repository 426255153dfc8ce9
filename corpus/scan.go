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
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// ScanOptions configures ScanEFFiles. If Progress is set,
// a spinner is written there during the scan.
type ScanOptions struct {
	Progress io.Writer
}

// ScanEFFiles recursively searches for Extracted Features files
// and returns respective volumes sorted by their paths.
func ScanEFFiles(dir string, opts ScanOptions) ([]*EFVolume, error) {
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if !isDir {
		return nil, fmt.Errorf("failed to scan %s: not a directory", dir)
	}
	var spin *spinner.Spinner
	if opts.Progress != nil {
		spin = spinner.New(
			spinner.CharSets[14],
			100*time.Millisecond,
			spinner.WithWriter(opts.Progress),
			spinner.WithSuffix(" scanning "+dir),
		)
		spin.Start()
	}
	ans := make([]*EFVolume, 0, 100)
	err = filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsEFFilename(d.Name()) {
			return nil
		}
		ans = append(ans, NewEFVolume(path))
		if spin != nil && len(ans)%100 == 0 {
			spin.Lock()
			spin.Suffix = fmt.Sprintf(" scanning %s (%d files)", dir, len(ans))
			spin.Unlock()
		}
		return nil
	})
	if spin != nil {
		spin.Lock()
		spin.FinalMSG = fmt.Sprintf("found %d Extracted Features files\n", len(ans))
		spin.Unlock()
		spin.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].path < ans[j].path })
	log.Debug().Str("dir", dir).Int("numFiles", len(ans)).Msg("scanned Extracted Features files")
	return ans, nil
}

// CountEFFiles returns the number of Extracted Features files
// within the directory (recursively).
func CountEFFiles(dir string) (int, error) {
	var ans int
	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsEFFilename(d.Name()) {
			ans++
		}
		return nil
	})
	return ans, err
}
