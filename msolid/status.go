// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/io"

// ErrorCode is the status returned by one material point update
type ErrorCode int

// status codes
const (
	Success                         ErrorCode = iota // update succeeded
	LinearElasticFailure                             // reserved: linear elastic predictor failed
	HyperelasticFailure                              // reserved: Neo-Hookean predictor failed
	RadialReturnFailure                              // radial return did not converge in RetMaxIt iterations
	ElasticDeformationUpdateFailure                  // recovery of the elastic stretch did not converge
	ModelEvalFailure                                 // model could not be evaluated (e.g. singular tensors)
)

var codeNames = map[ErrorCode]string{
	Success:                         "SUCCESS",
	LinearElasticFailure:            "LINEAR_ELASTIC_FAILURE",
	HyperelasticFailure:             "HYPERELASTIC_FAILURE",
	RadialReturnFailure:             "RADIAL_RETURN_FAILURE",
	ElasticDeformationUpdateFailure: "ELASTIC_DEFORMATION_UPDATE_FAILURE",
	ModelEvalFailure:                "MODEL_EVAL_FAILURE",
}

// String returns the name of the status code
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return io.Sf("ErrorCode(%d)", int(c))
}

// Error implements the error interface, so codes can be matched with errors.Is
func (c ErrorCode) Error() string {
	return "msolid: " + c.String()
}

// Err returns nil on Success; otherwise the code itself as an error
func (c ErrorCode) Err() error {
	if c == Success {
		return nil
	}
	return c
}

// UpdateError wraps a failed update with the location where it happened
type UpdateError struct {
	Code  ErrorCode // status of the failed update
	Index int       // step index (driver) or point index (batch)
	Time  float64   // time at the beginning of the failed step; 0 if unknown
}

func (e *UpdateError) Error() string {
	return io.Sf("update %d (t=%g) failed: %v", e.Index, e.Time, e.Code)
}

func (e *UpdateError) Unwrap() error {
	return e.Code
}
