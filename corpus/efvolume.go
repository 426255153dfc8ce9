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
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

type efSection struct {
	TokenPosCount map[string]map[string]int `json:"tokenPosCount"`
}

type efPage struct {
	Seq    string     `json:"seq"`
	Header *efSection `json:"header"`
	Body   *efSection `json:"body"`
	Footer *efSection `json:"footer"`
}

type efFeatures struct {
	PageCount int      `json:"pageCount"`
	Pages     []efPage `json:"pages"`
}

// efFile covers both 1.x (`id`) and 2.x (`htid`) versions
// of the HTRC Extracted Features format
type efFile struct {
	HTID     string     `json:"htid"`
	ID       string     `json:"id"`
	Features efFeatures `json:"features"`
}

func (ef *efFile) volumeID() string {
	if ef.HTID != "" {
		return ef.HTID
	}
	return ef.ID
}

// EFVolume is a volume stored as an HTRC Extracted Features file
// (either plain `.json` or `.json.bz2`). Only body sections are used.
type EFVolume struct {
	path string
	id   string
}

// ID returns the volume identifier. Before Tokens is called, it is
// derived from the file name. Once the file is read, the identifier
// stored in the file (`htid` or `id`) is used.
func (v *EFVolume) ID() string {
	return v.id
}

func (v *EFVolume) Path() string {
	return v.path
}

func (v *EFVolume) load() (*efFile, error) {
	f, err := os.Open(v.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume %s: %w", v.id, err)
	}
	defer f.Close()
	var rdr io.Reader = f
	if strings.HasSuffix(v.path, efExtBz2) {
		rdr = bzip2.NewReader(f)
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("failed to read volume %s: %w", v.id, err)
	}
	var ans efFile
	if err := sonic.Unmarshal(data, &ans); err != nil {
		return nil, fmt.Errorf("failed to decode volume %s: %w", v.id, err)
	}
	return &ans, nil
}

// Tokens returns body tokens with counts summed over all pages.
// Surface forms are case-folded.
func (v *EFVolume) Tokens() ([]TokenRecord, error) {
	data, err := v.load()
	if err != nil {
		return nil, err
	}
	if id := data.volumeID(); id != "" {
		v.id = id
	}
	acc := make(tokenAccumulator)
	for _, page := range data.Features.Pages {
		if page.Body == nil {
			continue
		}
		for token, posCounts := range page.Body.TokenPosCount {
			for pos, count := range posCounts {
				acc.add(token, pos, count)
			}
		}
	}
	return acc.records(), nil
}

// NewEFVolume creates a volume with an identifier derived
// from the file name.
func NewEFVolume(path string) *EFVolume {
	return &EFVolume{path: path, id: VolumeIDFromFilename(path)}
}
