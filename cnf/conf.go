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

package cnf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"efclean/corpus"
	"efclean/lexicon"
	"efclean/merror"
	"efclean/monitoring"
	"efclean/rdb"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltTimeZone        = "UTC"
	dfltLogLevel        = "info"
	dfltReferenceDir    = "reference_data"
	dfltCorrectionsFile = "Master_Corrections.csv"
	dfltMAFile          = "MA_Dict_Final.csv"
	dfltCitiesFile      = "world_cities.csv"
	dfltNLTKDirName     = "nltk_data"
	nltkDataEnvVar      = "NLTK_DATA"
)

// Conf is a global configuration of the app
type Conf struct {
	Input           string                  `json:"input"`
	Output          string                  `json:"output"`
	DictCorrections string                  `json:"dictCorrections"`
	DictMA          string                  `json:"dictMA"`
	WorldCities     string                  `json:"worldCities"`
	NLTKDataDir     string                  `json:"nltkDataDir"`
	NumProcesses    int                     `json:"numProcesses"`
	ErrorLog        string                  `json:"errorLog"`
	LogFile         string                  `json:"logFile"`
	LogLevel        logging.LogLevel        `json:"logLevel"`
	DryRun          bool                    `json:"dryRun"`
	StopwordFilters lexicon.StopwordFilters `json:"stopwordFilters"`
	Redis           *rdb.Conf               `json:"redis"`
	Monitoring      *monitoring.Conf        `json:"monitoring"`
	TimeZone        string                  `json:"timeZone"`

	srcPath string
}

func (conf *Conf) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call ValidateAndDefaults()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(conf.TimeZone)
	return loc
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if conf.srcPath == "" {
		return ""
	}
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// LexiconSources returns paths to all the lexical resources.
func (conf *Conf) LexiconSources() lexicon.Sources {
	return lexicon.Sources{
		CorrectionsPath: conf.DictCorrections,
		ArchaicPath:     conf.DictMA,
		CitiesPath:      conf.WorldCities,
		NLTKDataDir:     conf.NLTKDataDir,
		Filters:         conf.StopwordFilters,
	}
}

// WordNetDir returns the directory with WordNet database files.
func (conf *Conf) WordNetDir() string {
	return lexicon.NLTKData{Root: conf.NLTKDataDir}.CorpusPath("wordnet")
}

// Overrides contains values specified via command line. Zero
// values do not override anything.
type Overrides struct {
	Input           string
	Output          string
	DictCorrections string
	DictMA          string
	WorldCities     string
	NLTKDataDir     string
	NumProcesses    int
	ErrorLog        string
	DryRun          bool
	Verbose         bool
}

func (conf *Conf) ApplyOverrides(ov Overrides) {
	if ov.Input != "" {
		conf.Input = ov.Input
	}
	if ov.Output != "" {
		conf.Output = ov.Output
	}
	if ov.DictCorrections != "" {
		conf.DictCorrections = ov.DictCorrections
	}
	if ov.DictMA != "" {
		conf.DictMA = ov.DictMA
	}
	if ov.WorldCities != "" {
		conf.WorldCities = ov.WorldCities
	}
	if ov.NLTKDataDir != "" {
		conf.NLTKDataDir = ov.NLTKDataDir
	}
	if ov.NumProcesses > 0 {
		conf.NumProcesses = ov.NumProcesses
	}
	if ov.ErrorLog != "" {
		conf.ErrorLog = ov.ErrorLog
	}
	if ov.DryRun {
		conf.DryRun = true
	}
	if ov.Verbose {
		conf.LogLevel = "debug"
	}
}

// LoadConfig loads a JSON configuration. An empty path produces
// an empty configuration (all the values are expected to be set
// via command line then).
func LoadConfig(path string) *Conf {
	if path == "" {
		return &Conf{}
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = sonic.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}

func defaultNLTKDataDir() string {
	if v := os.Getenv(nltkDataEnvVar); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dfltNLTKDirName
	}
	return filepath.Join(home, dfltNLTKDirName)
}

// ApplyDefaults fills in missing values.
func (conf *Conf) ApplyDefaults() {
	if conf.DictCorrections == "" {
		conf.DictCorrections = filepath.Join(dfltReferenceDir, dfltCorrectionsFile)
		log.Warn().Str("path", conf.DictCorrections).Msg("dictCorrections not specified, using default")
	}
	if conf.DictMA == "" {
		conf.DictMA = filepath.Join(dfltReferenceDir, dfltMAFile)
		log.Warn().Str("path", conf.DictMA).Msg("dictMA not specified, using default")
	}
	if conf.WorldCities == "" {
		conf.WorldCities = filepath.Join(dfltReferenceDir, dfltCitiesFile)
		log.Warn().Str("path", conf.WorldCities).Msg("worldCities not specified, using default")
	}
	if conf.NLTKDataDir == "" {
		conf.NLTKDataDir = defaultNLTKDataDir()
		log.Warn().Str("path", conf.NLTKDataDir).Msg("nltkDataDir not specified, using default")
	}
	if conf.NumProcesses <= 0 {
		conf.NumProcesses = runtime.NumCPU()
		log.Info().Int("numProcesses", conf.NumProcesses).Msg("numProcesses not specified, auto-detected")
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	if conf.StopwordFilters == nil {
		conf.StopwordFilters = lexicon.DefaultStopwordFilters()
	}
	if conf.TimeZone == "" {
		conf.TimeZone = dfltTimeZone
		log.Warn().
			Str("timeZone", dfltTimeZone).
			Msg("time zone not specified, using default")
	}
}

func requireFile(path, key string) error {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return merror.InputError{Msg: fmt.Sprintf("failed to check `%s`", key), Err: err}
	}
	if !isFile {
		return merror.InputError{Msg: fmt.Sprintf("file `%s` not found: %s", key, path)}
	}
	return nil
}

// ValidateInput checks the corpus directory and the output location.
func (conf *Conf) ValidateInput() error {
	if conf.Input == "" {
		return merror.InputError{Msg: "missing `input`"}
	}
	if conf.Output == "" {
		return merror.InputError{Msg: "missing `output`"}
	}
	isDir, err := fs.IsDir(conf.Input)
	if err != nil {
		return merror.InputError{Msg: "failed to check `input`", Err: err}
	}
	if !isDir {
		return merror.InputError{Msg: "input directory does not exist: " + conf.Input}
	}
	numFiles, err := corpus.CountEFFiles(conf.Input)
	if err != nil {
		return merror.InputError{Msg: "failed to scan input directory", Err: err}
	}
	if numFiles == 0 {
		return merror.InputError{Msg: "no Extracted Features files found in: " + conf.Input}
	}
	log.Info().Int("numFiles", numFiles).Msg("found Extracted Features files in input directory")
	if fs.PathExists(conf.Output) && !conf.DryRun {
		log.Warn().Str("output", conf.Output).Msg("output directory exists, files may be overwritten")
	}
	return nil
}

// ValidateResources checks presence of all the reference data.
func (conf *Conf) ValidateResources() error {
	if err := requireFile(conf.DictCorrections, "dictCorrections"); err != nil {
		return err
	}
	if err := requireFile(conf.DictMA, "dictMA"); err != nil {
		return err
	}
	if err := requireFile(conf.WorldCities, "worldCities"); err != nil {
		return err
	}
	if err := (lexicon.NLTKData{Root: conf.NLTKDataDir}).Validate(); err != nil {
		return merror.InputError{Msg: "invalid `nltkDataDir`", Err: err}
	}
	isDir, err := fs.IsDir(conf.WordNetDir())
	if err != nil {
		return merror.InputError{Msg: "failed to check WordNet data", Err: err}
	}
	if !isDir {
		return merror.InputError{Msg: "NLTK WordNet data not found: " + conf.WordNetDir()}
	}
	for c := range conf.StopwordFilters {
		if !c.Validate() {
			return merror.InputError{Msg: fmt.Sprintf("unknown stopword filter category `%s`", c)}
		}
	}
	return nil
}

func (conf *Conf) validateCommon() error {
	if _, err := time.LoadLocation(conf.TimeZone); err != nil {
		return merror.InputError{Msg: "invalid time zone", Err: err}
	}
	if conf.Redis != nil {
		if err := conf.Redis.ValidateAndDefaults(); err != nil {
			return merror.InputError{Msg: "invalid `redis` configuration", Err: err}
		}
	}
	return nil
}

// ValidateAndDefaults sets default values and validates the whole
// configuration. Any problem is fatal.
func ValidateAndDefaults(conf *Conf) {
	conf.ApplyDefaults()
	if err := conf.validateCommon(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := conf.ValidateInput(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := conf.ValidateResources(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}

// ValidateAndDefaultsForWorker is like ValidateAndDefaults but it
// does not require input and output (these come with individual jobs).
func ValidateAndDefaultsForWorker(conf *Conf) {
	conf.ApplyDefaults()
	if conf.Redis == nil {
		log.Fatal().Msg("invalid configuration: missing `redis`")
	}
	if err := conf.validateCommon(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := conf.ValidateResources(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
}
