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

import "time"

// JobLog describes a single volume processing job as reported
// to the monitoring.
type JobLog struct {
	WorkerID string       `json:"workerId"`
	VolumeID string       `json:"volumeId"`
	Status   VolumeStatus `json:"status"`
	Begin    time.Time    `json:"begin"`
	End      time.Time    `json:"end"`
	Err      error        `json:"-"`
}
