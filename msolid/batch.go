// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"context"
	"errors"

	"github.com/cpmech/hyperep/ten"
	"golang.org/x/sync/errgroup"
)

// Point holds the input and output of one material point in a batch
type Point struct {
	F     ten.T   // deformation gradient at the end of the step
	Temp  float64 // temperature
	Remap bool    // re-project the state instead of a regular update
	State *State  // internal variables; owned by this point
	Wave  float64 // output: wave speed
}

// UpdateBatch updates all points concurrently with at most limit goroutines (limit ≤ 0: no limit)
//  Points are independent: a failed point does not stop the others. The returned error
//  joins one *UpdateError per failed point (Index = position in pts) and, if the context
//  was cancelled, ctx.Err().
func UpdateBatch(ctx context.Context, mdl Large, pts []*Point, dt float64, limit int) error {
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	errs := make([]error, len(pts))
	for i, pt := range pts {
		i, pt := i, pt
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var err error
			if pt.Remap {
				pt.Wave, err = mdl.Remap(pt.State, pt.F, dt, pt.Temp)
			} else {
				pt.Wave, err = mdl.Update(pt.State, pt.F, dt, pt.Temp)
			}
			if err != nil {
				code := ModelEvalFailure
				errors.As(err, &code)
				errs[i] = &UpdateError{Code: code, Index: i}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Join(append(errs, err)...)
	}
	return errors.Join(errs...)
}
