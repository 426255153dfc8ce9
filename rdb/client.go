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
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultQueueKey         = "efcleanQueue"
	DefaultResultKeyPrefix  = "efcleanResults"
	DefaultResultExpiration = 24 * time.Hour
	connTestRetryInterval   = 2 * time.Second
)

var (
	ErrorEmptyQueue = errors.New("no job in the queue")
)

// Adapter provides a Redis based job queue. Jobs are pushed to a single
// list shared by all workers, results of a batch are pushed to a list
// specific for the batch.
type Adapter struct {
	ctx             context.Context
	c               *redis.Client
	queueKey        string
	resultKeyPrefix string
}

func (a *Adapter) resultKey(batchID string) string {
	return fmt.Sprintf("%s:%s", a.resultKeyPrefix, batchID)
}

// TestConnection tries to ping Redis repeatedly until it
// succeeds or the timeout elapses.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	tick := time.NewTicker(connTestRetryInterval)
	defer tick.Stop()
	timeoutCh := time.After(timeout)
	for {
		err := a.c.Ping(a.ctx).Err()
		if err == nil {
			log.Info().Msg("Redis connection OK")
			return nil
		}
		log.Warn().Err(err).Msg("failed to connect to Redis, will retry")
		select {
		case <-timeoutCh:
			return fmt.Errorf("failed to connect to Redis: %w", err)
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-tick.C:
		}
	}
}

func (a *Adapter) EnqueueJob(job Job) error {
	msg, err := job.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize job: %w", err)
	}
	if err := a.c.LPush(a.ctx, a.queueKey, msg).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// QueueLength returns the number of jobs waiting for a worker.
func (a *Adapter) QueueLength() (int64, error) {
	return a.c.LLen(a.ctx, a.queueKey).Result()
}

func (a *Adapter) popBlocking(ctx context.Context, key string, timeout time.Duration) (string, error) {
	vals, err := a.c.BRPop(ctx, timeout, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrorEmptyQueue
	}
	if err != nil {
		return "", err
	}
	if len(vals) != 2 {
		return "", fmt.Errorf("unexpected BRPOP response of size %d", len(vals))
	}
	return vals[1], nil
}

// DequeueJob waits for a job up to the timeout. If there is no
// job, ErrorEmptyQueue is returned.
func (a *Adapter) DequeueJob(ctx context.Context, timeout time.Duration) (Job, error) {
	msg, err := a.popBlocking(ctx, a.queueKey, timeout)
	if err != nil {
		if err == ErrorEmptyQueue {
			return Job{}, err
		}
		return Job{}, fmt.Errorf("failed to dequeue job: %w", err)
	}
	job, err := DecodeJob(msg)
	if err != nil {
		return Job{}, fmt.Errorf("failed to deserialize job: %w", err)
	}
	return job, nil
}

func (a *Adapter) PublishResult(res JobResult) error {
	log.Debug().
		Str("batchId", res.BatchID).
		Str("volume", res.Result.VolumeID).
		Msg("publishing result")
	data, err := sonic.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	key := a.resultKey(res.BatchID)
	if err := a.c.LPush(a.ctx, key, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}
	return a.c.Expire(a.ctx, key, DefaultResultExpiration).Err()
}

// AwaitResult waits for a next result of the batch.
func (a *Adapter) AwaitResult(ctx context.Context, batchID string, timeout time.Duration) (JobResult, error) {
	msg, err := a.popBlocking(ctx, a.resultKey(batchID), timeout)
	if err != nil {
		if err == ErrorEmptyQueue {
			return JobResult{}, err
		}
		return JobResult{}, fmt.Errorf("failed to receive result: %w", err)
	}
	ans, err := DecodeJobResult(msg)
	if err != nil {
		return JobResult{}, fmt.Errorf("failed to deserialize result: %w", err)
	}
	return ans, nil
}

func (a *Adapter) Close() error {
	return a.c.Close()
}

func NewAdapter(conf *Conf) *Adapter {
	queueKey := conf.QueueKey
	if queueKey == "" {
		queueKey = DefaultQueueKey
		log.Warn().
			Str("key", queueKey).
			Msg("Redis queue key not specified, using default")
	}
	resPrefix := conf.ResultKeyPrefix
	if resPrefix == "" {
		resPrefix = DefaultResultKeyPrefix
		log.Warn().
			Str("prefix", resPrefix).
			Msg("Redis result key prefix not specified, using default")
	}
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     conf.ServerInfo(),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:             context.Background(),
		queueKey:        queueKey,
		resultKeyPrefix: resPrefix,
	}
}
