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

package rdb

import (
	"efclean/results"

	"github.com/bytedance/sonic"
)

// Job asks a worker to process a single volume.
type Job struct {
	BatchID   string `json:"batchId"`
	VolumeID  string `json:"volumeId"`
	Path      string `json:"path"`
	OutputDir string `json:"outputDir"`
	DryRun    bool   `json:"dryRun"`
}

func (j Job) ToJSON() (string, error) {
	ans, err := sonic.Marshal(j)
	if err != nil {
		return "", err
	}
	return string(ans), nil
}

func DecodeJob(s string) (Job, error) {
	var ans Job
	err := sonic.Unmarshal([]byte(s), &ans)
	return ans, err
}

// JobResult is sent back by a worker once a job is finished.
type JobResult struct {
	BatchID  string               `json:"batchId"`
	WorkerID string               `json:"workerId"`
	Result   results.VolumeResult `json:"result"`
}

func DecodeJobResult(s string) (JobResult, error) {
	var ans JobResult
	err := sonic.Unmarshal([]byte(s), &ans)
	return ans, err
}
