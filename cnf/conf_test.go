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
	"path/filepath"
	"testing"

	"efclean/lexicon"
	"efclean/merror"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestConf(t *testing.T) *Conf {
	conf := LoadConfig(filepath.Join("testdata", "conf.json"))
	require.NotNil(t, conf)
	return conf
}

func TestLoadConfig(t *testing.T) {
	conf := loadTestConf(t)
	assert.Equal(t, "testdata/input", conf.Input)
	assert.Equal(t, 2, conf.NumProcesses)
	assert.False(t, conf.StopwordFilters.Enabled(lexicon.CategoryCities))
	assert.True(t, conf.StopwordFilters.Enabled(lexicon.CategoryStems))
	require.NotNil(t, conf.Redis)
	assert.Equal(t, "localhost", conf.Redis.Host)
	assert.True(t, filepath.IsAbs(conf.GetSourcePath()))
}

func TestLoadConfigEmptyPath(t *testing.T) {
	conf := LoadConfig("")
	assert.Equal(t, "", conf.Input)
	assert.Equal(t, "", conf.GetSourcePath())
}

func TestApplyOverrides(t *testing.T) {
	conf := loadTestConf(t)
	conf.ApplyOverrides(Overrides{
		Output:       "/tmp/out",
		NumProcesses: 8,
		DryRun:       true,
		Verbose:      true,
	})
	assert.Equal(t, "testdata/input", conf.Input)
	assert.Equal(t, "/tmp/out", conf.Output)
	assert.Equal(t, 8, conf.NumProcesses)
	assert.True(t, conf.DryRun)
	assert.Equal(t, logging.LogLevel("debug"), conf.LogLevel)
}

func TestApplyDefaults(t *testing.T) {
	t.Setenv("NLTK_DATA", "/opt/nltk")
	conf := &Conf{}
	conf.ApplyDefaults()
	assert.Equal(t, filepath.Join("reference_data", "Master_Corrections.csv"), conf.DictCorrections)
	assert.Equal(t, filepath.Join("reference_data", "MA_Dict_Final.csv"), conf.DictMA)
	assert.Equal(t, filepath.Join("reference_data", "world_cities.csv"), conf.WorldCities)
	assert.Equal(t, "/opt/nltk", conf.NLTKDataDir)
	assert.Greater(t, conf.NumProcesses, 0)
	assert.Equal(t, "UTC", conf.TimeZone)
	assert.Len(t, conf.StopwordFilters, 9)
}

func TestValidate(t *testing.T) {
	conf := loadTestConf(t)
	conf.ApplyDefaults()
	assert.NoError(t, conf.validateCommon())
	assert.NoError(t, conf.ValidateInput())
	assert.NoError(t, conf.ValidateResources())
	assert.Equal(t, "Europe/Prague", conf.TimezoneLocation().String())
	assert.Equal(t, 6379, conf.Redis.Port)
}

func TestValidateInputErrors(t *testing.T) {
	conf := loadTestConf(t)
	conf.Output = ""
	assert.Error(t, conf.ValidateInput())

	conf = loadTestConf(t)
	conf.Input = filepath.Join("testdata", "nonexistent")
	assert.Error(t, conf.ValidateInput())

	conf = loadTestConf(t)
	conf.Input = filepath.Join("testdata", "ref")
	err := conf.ValidateInput()
	assert.ErrorContains(t, err, "no Extracted Features files")
	var inputErr merror.InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestValidateResourcesErrors(t *testing.T) {
	conf := loadTestConf(t)
	conf.DictMA = filepath.Join("testdata", "ref", "missing.csv")
	assert.Error(t, conf.ValidateResources())

	conf = loadTestConf(t)
	conf.NLTKDataDir = filepath.Join("testdata", "ref")
	err := conf.ValidateResources()
	var inputErr merror.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "invalid `nltkDataDir`", inputErr.Msg)
	assert.Error(t, inputErr.Unwrap())

	conf = loadTestConf(t)
	conf.StopwordFilters = lexicon.StopwordFilters{"planets": true}
	assert.ErrorContains(t, conf.ValidateResources(), "planets")
}

func TestValidateInvalidTimeZone(t *testing.T) {
	conf := loadTestConf(t)
	conf.TimeZone = "Mars/Olympus"
	assert.Error(t, conf.validateCommon())
}
