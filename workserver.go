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
	"os/signal"
	"syscall"
	"time"

	"efclean/cnf"
	"efclean/monitoring"
	"efclean/rdb"
	"efclean/worker"

	"github.com/rs/zerolog/log"
)

const (
	workerStatusInterval = 5 * time.Minute
)

func logRecentLoad(ctx context.Context, jobLogger *monitoring.JobLogger) {
	ticker := time.NewTicker(workerStatusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			load := jobLogger.RecentLoad()
			log.Info().
				Int("numJobs", load.NumJobs).
				Int("numErrors", load.NumErrors).
				Int("numEmpty", load.NumEmpty).
				Float64("avgLoad", load.AvgLoad()).
				Msg("recent worker load")
		}
	}
}

func runWorker(conf *cnf.Conf) {
	workerID := getWorkerID()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// each worker process has its own copy of the resources
	pipeline, _ := loadPipeline(conf)

	radapter := rdb.NewAdapter(conf.Redis)
	defer radapter.Close()
	if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	jobLogger, services := newJobLogger(ctx, conf)
	wrk := worker.NewWorker(workerID, radapter, pipeline, jobLogger)
	services = append(services, wrk)
	startServices(ctx, services)
	go logRecentLoad(ctx, jobLogger)

	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")
	stopServices(services)
	if load, err := jobLogger.TotalWorkerLoad(workerID); err == nil {
		log.Info().Interface("load", load).Msg("worker finished")

	} else {
		log.Info().Msg("worker finished without processing any volume")
	}
}
