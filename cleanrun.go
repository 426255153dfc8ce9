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
	"syscall"

	"efclean/cnf"
	"efclean/corpus"
	"efclean/worker"

	"github.com/rs/zerolog/log"
)

func scanVolumes(conf *cnf.Conf) []*corpus.EFVolume {
	vols, err := corpus.ScanEFFiles(conf.Input, corpus.ScanOptions{Progress: os.Stderr})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to scan input directory")
	}
	log.Info().Int("numVolumes", len(vols)).Msg("found HTRC Extracted Features files")
	return vols
}

func reportDryRun(conf *cnf.Conf, numVolumes int) {
	fmt.Printf("DRY RUN: processing %d volumes, no output will be written\n", numVolumes)
	fmt.Printf("Output directory: %s\n", conf.Output)
}

func runClean(conf *cnf.Conf) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vols := scanVolumes(conf)
	if conf.DryRun {
		reportDryRun(conf, len(vols))

	} else if err := os.MkdirAll(conf.Output, 0755); err != nil {
		log.Fatal().Err(err).Str("output", conf.Output).Msg("failed to create output directory")
	}
	pipeline, _ := loadPipeline(conf)

	jobLogger, services := newJobLogger(ctx, conf)
	startServices(ctx, services)
	defer stopServices(services)

	docs := make([]corpus.Document, len(vols))
	for i, v := range vols {
		docs[i] = v
	}
	pool := worker.NewPool(
		worker.NewVolumeProcessor(pipeline, conf.Output, conf.DryRun),
		conf.NumProcesses,
		jobLogger,
	)
	log.Info().
		Int("numProcesses", conf.NumProcesses).
		Str("output", conf.Output).
		Msg("processing volumes")
	report := pool.Run(ctx, docs)
	fmt.Println(report.String())
	load := jobLogger.TotalLoad()
	fmt.Printf("Workers: %d, average load: %.2f\n", load.NumWorkers, load.AvgLoad())
	log.Info().
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("empty", report.Empty).
		Int("failed", report.Failed).
		Interface("load", load).
		Msg("processing finished")
}

func runTest(conf *cnf.Conf) {
	_, res := loadPipeline(conf)
	sm := res.Summary()
	fmt.Printf("Spelling corrections: %d\n", sm.SpellingCorrections)
	fmt.Printf("Modern/archaic mappings: %d\n", sm.ArchaicMappings)
	fmt.Printf("Validation vocabulary: %d terms\n", sm.ValidationSize)
	fmt.Printf("Filter vocabulary: %d terms\n", sm.FilterSize)
	log.Info().Msg("config OK")
}
