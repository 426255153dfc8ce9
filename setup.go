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
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"efclean/cleaning"
	"efclean/cnf"
	"efclean/lemma"
	"efclean/lexicon"
	"efclean/monitoring"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func getWorkerID() (workerID string) {
	workerID = os.Getenv("WORKER_ID")
	if workerID == "" {
		workerID = strconv.Itoa(os.Getpid())
	}
	return
}

// setupLogging configures the global logger. If an error log is
// configured, events of level `error` and above are also appended
// there.
func setupLogging(path string, conf *cnf.Conf) {
	logging.SetupLogging(logging.LoggingConf{Path: path, Level: conf.LogLevel})
	if conf.ErrorLog == "" {
		return
	}
	errLog, err := os.OpenFile(conf.ErrorLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatal().Err(err).Str("path", conf.ErrorLog).Msg("failed to open error log")
	}
	var primary io.Writer
	if path == "" {
		primary = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to open log file")
		}
		primary = f
	}
	log.Logger = zerolog.New(
		zerolog.MultiLevelWriter(
			primary,
			&zerolog.FilteredLevelWriter{
				Writer: zerolog.LevelWriterAdapter{Writer: errLog},
				Level:  zerolog.ErrorLevel,
			},
		),
	).With().Timestamp().Logger()
}

// loadPipeline loads all the lexical resources and creates
// the cleaning pipeline. Any failure is fatal.
func loadPipeline(conf *cnf.Conf) (*cleaning.Pipeline, *lexicon.Resources) {
	t0 := time.Now()
	res, err := lexicon.Load(conf.LexiconSources())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load lexical resources")
	}
	wn, err := lemma.LoadWordNet(conf.WordNetDir())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load WordNet")
	}
	sm := res.Summary()
	evt := log.Info().
		Int("spellingCorrections", sm.SpellingCorrections).
		Int("archaicMappings", sm.ArchaicMappings).
		Int("validationVocabulary", sm.ValidationSize).
		Int("filterVocabulary", sm.FilterSize).
		Int("wordNetLemmas", wn.NumLemmas())
	for _, c := range lexicon.AllCategories {
		evt = evt.Int(string(c), sm.Categories[c])
	}
	evt.Dur("loadTime", time.Since(t0)).Msg("reference data loaded")
	return cleaning.NewPipeline(res, lemma.NewLemmatizer(wn, res.Validation)), res
}

// newJobLogger creates a job logger writing to TimescaleDB
// if configured.
func newJobLogger(ctx context.Context, conf *cnf.Conf) (*monitoring.JobLogger, []service) {
	services := make([]service, 0, 2)
	var statusWriter monitoring.StatusWriter = &monitoring.NullStatusWriter{}
	if conf.Monitoring != nil {
		tsWriter, err := monitoring.NewTimescaleDBWriter(ctx, conf.Monitoring.DB, conf.TimezoneLocation())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize status writer")
		}
		statusWriter = tsWriter
		services = append(services, tsWriter)
	}
	jobLogger := monitoring.NewJobLogger(statusWriter, conf.TimezoneLocation())
	services = append(services, jobLogger)
	return jobLogger, services
}

func startServices(ctx context.Context, services []service) {
	for _, s := range services {
		s.Start(ctx)
	}
}

func stopServices(services []service) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
