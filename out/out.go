// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of material point simulations: a SQLite results
// database and tabular reports
package out

import (
	"errors"

	"github.com/cpmech/hyperep/msolid"
)

// Step holds the results of one step of a driver run
type Step struct {
	Index int           // step index; 0 is the initial state
	Time  float64       // time at the end of the step
	Wave  float64       // wave speed
	State *msolid.State // state at the end of the step
}

// Steps collects the results of a driver
func Steps(drv *msolid.Driver) (res []Step) {
	res = make([]Step, len(drv.Res))
	for i, s := range drv.Res {
		res[i] = Step{Index: i, Time: drv.Time[i], Wave: drv.Wave[i], State: s}
	}
	return
}

// Status returns the name of the status of a driver run
//  nil => "SUCCESS"; *msolid.UpdateError or msolid.ErrorCode => name of code; otherwise "ERROR"
func Status(err error) string {
	if err == nil {
		return msolid.Success.String()
	}
	var code msolid.ErrorCode
	if errors.As(err, &code) {
		return code.String()
	}
	return "ERROR"
}
