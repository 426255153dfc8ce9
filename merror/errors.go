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

package merror

import (
	"fmt"
	"time"
)

// InputError describes problems with configuration, reference data
// or input volumes. At startup, it is always fatal.
type InputError struct {
	Msg string
	Err error
}

func (err InputError) Error() string {
	if err.Err != nil {
		return err.Msg + ": " + err.Err.Error()
	}
	return err.Msg
}

func (err InputError) Unwrap() error {
	return err.Err
}

// InternalError is a failure not caused by input data
// (e.g. an output file cannot be written).
type InternalError struct {
	Msg string
	Err error
}

func (err InternalError) Error() string {
	if err.Err != nil {
		return err.Msg + ": " + err.Err.Error()
	}
	return err.Msg
}

func (err InternalError) Unwrap() error {
	return err.Err
}

// RecoveredError is produced when processing of a single volume
// panics. The volume is skipped, the batch continues.
type RecoveredError struct {
	Msg string
}

func (err RecoveredError) Error() string {
	return err.Msg
}

// TimeoutError reports an operation which did not finish
// within its time limit.
type TimeoutError struct {
	Msg     string
	Timeout time.Duration
}

func (err TimeoutError) Error() string {
	return fmt.Sprintf("%s (timeout %s)", err.Msg, err.Timeout)
}

func PanicValueToErr(v any) (err error) {
	switch tr := v.(type) {
	case error:
		err = fmt.Errorf("recovered panic: %w", tr)
	case string:
		err = fmt.Errorf("recovered panic: %s", tr)
	default:
		err = fmt.Errorf("recovered panic from a value of type %T", v)
	}
	return
}
