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
	"fmt"
	"path/filepath"
	"time"

	"efclean/cleaning"
	"efclean/corpus"
	"efclean/merror"
	"efclean/results"

	"github.com/rs/zerolog/log"
)

// VolumeProcessor cleans a single volume and writes its output file.
type VolumeProcessor struct {
	pipeline  *cleaning.Pipeline
	outputDir string
	dryRun    bool
}

func (vp *VolumeProcessor) processProtected(doc corpus.Document, ans *results.VolumeResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = merror.RecoveredError{Msg: merror.PanicValueToErr(r).Error()}
		}
	}()
	tokens, err := doc.Tokens()
	if err != nil {
		return fmt.Errorf("failed to extract tokens: %w", err)
	}
	ans.VolumeID = doc.ID()
	ans.NumTokens = len(tokens)
	stems := vp.pipeline.Process(tokens)
	ans.NumStems = len(stems)
	if len(stems) == 0 {
		ans.Status = results.VolumeEmpty
		return nil
	}
	ans.Status = results.VolumeOK
	if vp.dryRun {
		return nil
	}
	outPath := filepath.Join(vp.outputDir, corpus.OutputFilename(doc.ID()))
	if err := writeFileAtomic(outPath, FormatBagOfWords(stems)); err != nil {
		return merror.InternalError{Msg: "failed to write output", Err: err}
	}
	ans.OutputPath = outPath
	return nil
}

// Process runs the cleaning pipeline for a volume. Any failure
// (including a panic) is reported via the result; nothing is written
// for failed or empty volumes.
func (vp *VolumeProcessor) Process(doc corpus.Document) results.VolumeResult {
	t0 := time.Now()
	ans := results.VolumeResult{VolumeID: doc.ID()}
	if err := vp.processProtected(doc, &ans); err != nil {
		ans.Status = results.VolumeFailed
		ans.Error = err.Error()
		ans.OutputPath = ""
		log.Error().Err(err).Str("volume", ans.VolumeID).Msg("error processing volume")

	} else if ans.Status == results.VolumeEmpty {
		log.Warn().Str("volume", ans.VolumeID).Msg("no clean data for volume")
	}
	ans.Duration = time.Since(t0)
	return ans
}

func NewVolumeProcessor(pipeline *cleaning.Pipeline, outputDir string, dryRun bool) *VolumeProcessor {
	return &VolumeProcessor{
		pipeline:  pipeline,
		outputDir: outputDir,
		dryRun:    dryRun,
	}
}
