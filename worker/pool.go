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
	"fmt"
	"runtime"
	"sync"
	"time"

	"efclean/corpus"
	"efclean/results"

	"github.com/rs/zerolog/log"
)

const (
	progressReportInterval = 10 * time.Second
)

type jobLogger interface {
	Log(rec results.JobLog)
}

// Pool processes volumes using a fixed number of goroutines. All of them
// share the same read-only pipeline. A failure of one volume never
// affects the others.
type Pool struct {
	processor  *VolumeProcessor
	numWorkers int
	jobLogger  jobLogger
}

func (p *Pool) runWorker(
	workerID string,
	docs <-chan corpus.Document,
	out chan<- results.VolumeResult,
) {
	for doc := range docs {
		t0 := time.Now()
		res := p.processor.Process(doc)
		if p.jobLogger != nil {
			p.jobLogger.Log(results.JobLog{
				WorkerID: workerID,
				VolumeID: res.VolumeID,
				Status:   res.Status,
				Begin:    t0,
				End:      time.Now(),
				Err:      res.Err(),
			})
		}
		out <- res
	}
}

// Run processes all the documents and returns a summary. Once
// the context is cancelled, no new documents are started.
func (p *Pool) Run(ctx context.Context, docs []corpus.Document) results.Report {
	var report results.Report
	docCh := make(chan corpus.Document)
	resCh := make(chan results.VolumeResult, p.numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			p.runWorker(id, docCh, resCh)
		}(fmt.Sprintf("local-%d", i))
	}
	go func() {
		defer close(docCh)
		for _, doc := range docs {
			select {
			case <-ctx.Done():
				log.Warn().Msg("processing interrupted, no more volumes will be started")
				return
			case docCh <- doc:
			}
		}
	}()
	go func() {
		wg.Wait()
		close(resCh)
	}()

	lastReport := time.Now()
	for res := range resCh {
		report.Add(res)
		if time.Since(lastReport) >= progressReportInterval {
			log.Info().
				Int("processed", report.Total).
				Int("total", len(docs)).
				Msg("processing volumes")
			lastReport = time.Now()
		}
	}
	return report
}

func NewPool(processor *VolumeProcessor, numWorkers int, jobLogger jobLogger) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		processor:  processor,
		numWorkers: numWorkers,
		jobLogger:  jobLogger,
	}
}
