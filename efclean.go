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
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"

	"efclean/cnf"
)

const (
	redisConnectionTestTimeout = 120 * time.Second
	shutdownTimeout            = 10 * time.Second
)

var (
	version   string
	buildDate string
	gitCommit string
)

type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func main() {
	version := VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	var overrides cnf.Overrides
	flag.StringVar(&overrides.Input, "input", "", "Input directory with HTRC Extracted Features files")
	flag.StringVar(&overrides.Output, "output", "", "Output directory for cleaned text files")
	flag.StringVar(&overrides.DictCorrections, "dict-corrections", "", "Path to the spelling corrections CSV")
	flag.StringVar(&overrides.DictMA, "dict-ma", "", "Path to the modern/archaic dictionary CSV")
	flag.StringVar(&overrides.WorldCities, "world-cities", "", "Path to the world cities CSV")
	flag.StringVar(&overrides.NLTKDataDir, "nltk-data", "", "NLTK data directory")
	flag.IntVar(&overrides.NumProcesses, "num-processes", 0, "Number of parallel workers (default: number of CPUs)")
	flag.StringVar(&overrides.ErrorLog, "error-log", "", "A file where errors are logged in addition to the main log")
	flag.BoolVar(&overrides.DryRun, "dry-run", false, "Report what would be processed without writing anything")
	flag.BoolVar(&overrides.Verbose, "verbose", false, "Verbose (debug) logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "EFCLEAN - a cleaning tool for HTRC Extracted Features data\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] run [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] worker [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] dispatch [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s version\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("efclean %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	conf.ApplyOverrides(overrides)
	if conf.LogLevel == "" {
		conf.LogLevel = logging.LogLevel("info")
	}

	switch action {
	case "worker":
		var wPath string
		if conf.LogFile != "" {
			wPath = filepath.Join(filepath.Dir(conf.LogFile), "worker.log")
		}
		setupLogging(wPath, conf)
		log.Logger = log.Logger.With().Str("worker", getWorkerID()).Logger()
		cnf.ValidateAndDefaultsForWorker(conf)
		runWorker(conf)
	case "run", "dispatch", "test":
		setupLogging(conf.LogFile, conf)
		log.Info().
			Str("version", version.Version).
			Str("config", conf.GetSourcePath()).
			Msg("Starting EFCLEAN")
		cnf.ValidateAndDefaults(conf)
		switch action {
		case "run":
			runClean(conf)
		case "dispatch":
			runDispatch(conf)
		case "test":
			runTest(conf)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}
