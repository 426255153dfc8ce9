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
	"context"
	"errors"
	"math/rand"
	"time"

	"efclean/cleaning"
	"efclean/corpus"
	"efclean/rdb"
	"efclean/results"

	"github.com/rs/zerolog/log"
)

const (
	DefaultDequeueTimeout = 2 * time.Second
	errorPause            = 5 * time.Second
)

// Worker consumes volume jobs from a Redis queue. It is used when
// volumes are processed by multiple independent OS processes.
type Worker struct {
	ID        string
	radapter  *rdb.Adapter
	pipeline  *cleaning.Pipeline
	jobLogger jobLogger
}

func (w *Worker) processJob(job rdb.Job) results.VolumeResult {
	proc := NewVolumeProcessor(w.pipeline, job.OutputDir, job.DryRun)
	return proc.Process(corpus.NewEFVolume(job.Path))
}

func (w *Worker) tryNextJob(ctx context.Context) error {
	time.Sleep(time.Duration(rand.Intn(40)) * time.Millisecond)
	job, err := w.radapter.DequeueJob(ctx, DefaultDequeueTimeout)
	if err == rdb.ErrorEmptyQueue {
		return nil

	} else if err != nil {
		return err
	}
	log.Debug().
		Str("batchId", job.BatchID).
		Str("volume", job.VolumeID).
		Msg("received job")

	t0 := time.Now()
	res := w.processJob(job)
	if w.jobLogger != nil {
		w.jobLogger.Log(results.JobLog{
			WorkerID: w.ID,
			VolumeID: res.VolumeID,
			Status:   res.Status,
			Begin:    t0,
			End:      time.Now(),
			Err:      res.Err(),
		})
	}
	return w.radapter.PublishResult(rdb.JobResult{
		BatchID:  job.BatchID,
		WorkerID: w.ID,
		Result:   res,
	})
}

// Listen processes jobs until the context is cancelled.
func (w *Worker) Listen(ctx context.Context) {
	log.Info().Str("workerId", w.ID).Msg("worker listening for jobs")
	for {
		select {
		case <-ctx.Done():
			log.Info().Str("workerId", w.ID).Msg("worker exiting")
			return
		default:
		}
		if err := w.tryNextJob(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			log.Error().Err(err).Str("workerId", w.ID).Msg("failed to process job")
			select {
			case <-ctx.Done():
			case <-time.After(errorPause):
			}
		}
	}
}

func (w *Worker) Start(ctx context.Context) {
	go w.Listen(ctx)
}

func (w *Worker) Stop(ctx context.Context) error {
	log.Warn().Str("workerId", w.ID).Msg("shutting down worker")
	return nil
}

func NewWorker(
	workerID string,
	radapter *rdb.Adapter,
	pipeline *cleaning.Pipeline,
	jobLogger jobLogger,
) *Worker {
	return &Worker{
		ID:        workerID,
		radapter:  radapter,
		pipeline:  pipeline,
		jobLogger: jobLogger,
	}
}
