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
	"context"
	"strconv"
	"testing"
	"time"

	"efclean/results"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) (*Adapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	conf := &Conf{Host: mr.Host(), Port: port}
	require.NoError(t, conf.ValidateAndDefaults())
	a := NewAdapter(conf)
	t.Cleanup(func() { a.Close() })
	return a, mr
}

func TestConfValidateAndDefaults(t *testing.T) {
	conf := &Conf{Host: "localhost"}
	assert.NoError(t, conf.ValidateAndDefaults())
	assert.Equal(t, 6379, conf.Port)
	assert.Equal(t, DefaultQueueKey, conf.QueueKey)
	assert.Equal(t, DefaultResultKeyPrefix, conf.ResultKeyPrefix)
	assert.Error(t, (&Conf{}).ValidateAndDefaults())
}

func TestTestConnection(t *testing.T) {
	a, _ := newTestAdapter(t)
	assert.NoError(t, a.TestConnection(time.Second))
}

func TestEnqueueDequeueOrder(t *testing.T) {
	a, _ := newTestAdapter(t)
	require.NoError(t, a.EnqueueJob(Job{BatchID: "b1", VolumeID: "v1", Path: "/a"}))
	require.NoError(t, a.EnqueueJob(Job{BatchID: "b1", VolumeID: "v2", Path: "/b"}))
	n, err := a.QueueLength()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	j, err := a.DequeueJob(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, Job{BatchID: "b1", VolumeID: "v1", Path: "/a"}, j)
	j, err = a.DequeueJob(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "v2", j.VolumeID)
}

func TestDequeueEmpty(t *testing.T) {
	a, _ := newTestAdapter(t)
	_, err := a.DequeueJob(context.Background(), time.Second)
	assert.ErrorIs(t, err, ErrorEmptyQueue)
}

func TestDequeueInvalidJob(t *testing.T) {
	a, mr := newTestAdapter(t)
	_, err := mr.Lpush(DefaultQueueKey, "{invalid")
	require.NoError(t, err)
	_, err = a.DequeueJob(context.Background(), time.Second)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrorEmptyQueue)
}

func TestPublishAndAwaitResult(t *testing.T) {
	a, mr := newTestAdapter(t)
	res := JobResult{
		BatchID:  "b1",
		WorkerID: "w1",
		Result: results.VolumeResult{
			VolumeID: "v1",
			Status:   results.VolumeOK,
			NumStems: 10,
		},
	}
	require.NoError(t, a.PublishResult(res))
	assert.True(t, mr.Exists(DefaultResultKeyPrefix+":b1"))
	assert.Greater(t, mr.TTL(DefaultResultKeyPrefix+":b1"), time.Duration(0))

	ans, err := a.AwaitResult(context.Background(), "b1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, res, ans)

	_, err = a.AwaitResult(context.Background(), "b2", time.Second)
	assert.ErrorIs(t, err, ErrorEmptyQueue)
}
