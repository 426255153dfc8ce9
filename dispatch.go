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
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"efclean/cnf"
	"efclean/merror"
	"efclean/rdb"
	"efclean/results"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// resultIdleTimeout limits how long we wait for any worker
	// to report a result before the batch is considered stalled.
	resultIdleTimeout = 10 * time.Minute
	resultPollTimeout = 5 * time.Second
)

func runDispatch(conf *cnf.Conf) {
	if conf.Redis == nil {
		log.Fatal().Msg("invalid configuration: `dispatch` requires `redis`")
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vols := scanVolumes(conf)
	outDir, err := filepath.Abs(conf.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve output directory")
	}
	if conf.DryRun {
		reportDryRun(conf, len(vols))

	} else if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatal().Err(err).Str("output", outDir).Msg("failed to create output directory")
	}

	radapter := rdb.NewAdapter(conf.Redis)
	defer radapter.Close()
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	batchID := uuid.New().String()
	numJobs := 0
	for _, vol := range vols {
		volPath, err := filepath.Abs(vol.Path())
		if err != nil {
			log.Error().Err(err).Str("path", vol.Path()).Msg("failed to resolve volume path, skipping")
			continue
		}
		err = radapter.EnqueueJob(rdb.Job{
			BatchID:   batchID,
			VolumeID:  vol.ID(),
			Path:      volPath,
			OutputDir: outDir,
			DryRun:    conf.DryRun,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to dispatch jobs")
		}
		numJobs++
	}
	log.Info().
		Str("batchId", batchID).
		Int("numJobs", numJobs).
		Str("redis", conf.Redis.ServerInfo()).
		Msg("jobs dispatched, waiting for workers")

	rc := &resultCollector{
		radapter:    radapter,
		pollTimeout: resultPollTimeout,
		idleTimeout: resultIdleTimeout,
	}
	report, err := rc.collect(ctx, batchID, numJobs)
	if err != nil {
		log.Error().Err(err).Msg("batch not finished")
	}
	fmt.Println(report.String())
	if report.Total < numJobs {
		log.Warn().
			Int("missing", numJobs-report.Total).
			Msg("not all results received")
	}
}

// resultCollector receives results of a dispatched batch
type resultCollector struct {
	radapter    *rdb.Adapter
	pollTimeout time.Duration
	idleTimeout time.Duration
}

func (rc *resultCollector) collect(ctx context.Context, batchID string, numJobs int) (results.Report, error) {
	var report results.Report
	lastResult := time.Now()
	for report.Total < numJobs {
		if ctx.Err() != nil {
			log.Warn().Msg("interrupted, not waiting for remaining results")
			return report, nil
		}
		res, err := rc.radapter.AwaitResult(ctx, batchID, rc.pollTimeout)
		if err == rdb.ErrorEmptyQueue {
			if time.Since(lastResult) > rc.idleTimeout {
				return report, merror.TimeoutError{
					Msg:     "no results from workers, giving up",
					Timeout: rc.idleTimeout,
				}
			}
			continue

		} else if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Error().Err(err).Msg("failed to receive result")
			time.Sleep(rc.pollTimeout)
			continue
		}
		lastResult = time.Now()
		report.Add(res.Result)
		if res.Result.Status == results.VolumeFailed {
			log.Error().
				Str("volume", res.Result.VolumeID).
				Str("worker", res.WorkerID).
				Str("error", res.Result.Error).
				Msg("volume processing failed")
		}
		if report.Total%1000 == 0 {
			evt := log.Info().
				Int("done", report.Total).
				Int("total", numJobs)
			if queued, err := rc.radapter.QueueLength(); err == nil {
				evt = evt.Int64("queued", queued)
			}
			evt.Msg("progress")
		}
	}
	return report, nil
}
