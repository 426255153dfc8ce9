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

package results

import (
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type VolumeStatus string

const (
	VolumeOK     VolumeStatus = "ok"
	VolumeEmpty  VolumeStatus = "empty"
	VolumeFailed VolumeStatus = "failed"
)

// VolumeResult is an outcome of processing of a single volume.
type VolumeResult struct {
	VolumeID   string        `json:"volumeId"`
	Status     VolumeStatus  `json:"status"`
	OutputPath string        `json:"outputPath,omitempty"`
	NumStems   int           `json:"numStems"`
	NumTokens  int           `json:"numTokens"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration"`
}

func (vr VolumeResult) Err() error {
	if vr.Error == "" {
		return nil
	}
	return errors.New(vr.Error)
}

// Report summarizes a batch. Only volumes with some output count
// as succeeded. Empty volumes are neither successes nor errors.
type Report struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Empty     int `json:"empty"`
	Failed    int `json:"failed"`
}

func (r *Report) Add(res VolumeResult) {
	r.Total++
	switch res.Status {
	case VolumeOK:
		r.Succeeded++
	case VolumeEmpty:
		r.Empty++
	default:
		r.Failed++
	}
}

func (r Report) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf(
		"Processed %d/%d volumes successfully (%d without clean data, %d failed)",
		r.Succeeded, r.Total, r.Empty, r.Failed,
	)
}
