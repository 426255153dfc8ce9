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

package main

import (
	"context"
	"strconv"
	"testing"
	"time"

	"efclean/merror"
	"efclean/rdb"
	"efclean/results"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollector(t *testing.T, idleTimeout time.Duration) *resultCollector {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	adapter := rdb.NewAdapter(&rdb.Conf{Host: mr.Host(), Port: port})
	t.Cleanup(func() { adapter.Close() })
	return &resultCollector{
		radapter:    adapter,
		pollTimeout: time.Second,
		idleTimeout: idleTimeout,
	}
}

func TestCollectResults(t *testing.T) {
	rc := newTestCollector(t, time.Minute)
	for i, status := range []results.VolumeStatus{results.VolumeOK, results.VolumeEmpty, results.VolumeFailed} {
		require.NoError(t, rc.radapter.PublishResult(rdb.JobResult{
			BatchID:  "b1",
			WorkerID: "w1",
			Result:   results.VolumeResult{VolumeID: strconv.Itoa(i), Status: status},
		}))
	}
	report, err := rc.collect(context.Background(), "b1", 3)
	require.NoError(t, err)
	assert.Equal(t, results.Report{Total: 3, Succeeded: 1, Empty: 1, Failed: 1}, report)
}

func TestCollectResultsIdleTimeout(t *testing.T) {
	rc := newTestCollector(t, time.Millisecond)
	require.NoError(t, rc.radapter.PublishResult(rdb.JobResult{
		BatchID: "b1",
		Result:  results.VolumeResult{VolumeID: "v1", Status: results.VolumeOK},
	}))
	report, err := rc.collect(context.Background(), "b1", 2)
	var timeoutErr merror.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, time.Millisecond, timeoutErr.Timeout)
	assert.Equal(t, 1, report.Total)
}
