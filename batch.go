// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hyperep/inp"
	"github.com/cpmech/hyperep/msolid"
	"github.com/cpmech/hyperep/out"
	"github.com/cpmech/hyperep/ten"
	"github.com/spf13/cobra"
)

var batchFlags struct {
	npts  int
	alias string
}

var batchCmd = &cobra.Command{
	Use:   "batch file.sim",
	Short: "Update a set of material points concurrently",
	Long: "Update npts material points concurrently along scaled copies of the deformation path of a\n" +
		"simulation file: point i follows F = I + (i+1)/npts (F_path - I). The number of concurrent\n" +
		"updates is limited by the \"workers\" entry of the simulation file. Failed points are reported\n" +
		"and dropped from the remaining steps.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.IntVar(&batchFlags.npts, "npts", 8, "number of material points")
	f.StringVar(&batchFlags.alias, "alias", "", "word added to the simulation key")
}

func runBatch(cmd *cobra.Command, args []string) error {
	format, err := tableFormat()
	if err != nil {
		return err
	}
	if batchFlags.npts < 1 {
		return chk.Err("number of points must be at least 1; %d is invalid", batchFlags.npts)
	}
	sim, err := inp.ReadSim(args[0], batchFlags.alias)
	if err != nil {
		return err
	}
	steps, nfailed, err := batchRun(cmd.Context(), sim, batchFlags.npts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out.Table(steps, format))
	if nfailed > 0 {
		return chk.Err("%d of %d points failed", nfailed, batchFlags.npts)
	}
	return nil
}

// batchRun runs all points along the scaled path and returns the final results of each point
//  Note: Step.Index is the point index
func batchRun(ctx context.Context, sim *inp.Simulation, npts int) (res []out.Step, nfailed int, err error) {
	large, ok := sim.Mat.Solid.(msolid.Large)
	if !ok {
		return nil, 0, chk.Err("model %q cannot handle large deformations", sim.Mat.Model)
	}
	slog.Info("batch", "material", sim.Mat.Name, "npts", npts, "nsteps", len(sim.Path.Steps), "workers", sim.Workers)

	// points; ids[i] is the index of active[i] in res
	active := make([]*msolid.Point, npts)
	ids := make([]int, npts)
	res = make([]out.Step, npts)
	for i := range active {
		active[i] = &msolid.Point{State: sim.Mat.Solid.InitIntVars()}
		ids[i] = i
		res[i] = out.Step{Index: i, State: active[i].State}
	}

	// steps
	var t float64
	for k, stp := range sim.Path.Steps {
		for i, pt := range active {
			pt.F, pt.Temp, pt.Remap = scaleF(stp.F, float64(ids[i]+1)/float64(npts)), stp.Temp, stp.Remap
		}
		err = msolid.UpdateBatch(ctx, large, active, stp.Dt, sim.Workers)
		failed := make(map[int]bool)
		for _, e := range unjoin(err) {
			var ue *msolid.UpdateError
			if !errors.As(e, &ue) {
				return nil, 0, e
			}
			failed[ue.Index] = true
			slog.Warn("point failed", "step", k, "point", ids[ue.Index], "code", ue.Code)
		}
		t += stp.Dt
		var nextPts []*msolid.Point
		var nextIds []int
		for i, pt := range active {
			if failed[i] {
				nfailed++
				continue
			}
			res[ids[i]].Time, res[ids[i]].Wave = t, pt.Wave
			nextPts = append(nextPts, pt)
			nextIds = append(nextIds, ids[i])
		}
		active, ids = nextPts, nextIds
		if len(active) == 0 {
			break
		}
	}
	return res, nfailed, nil
}

// scaleF returns I + s (F - I)
func scaleF(F ten.T, s float64) ten.T {
	return ten.I.Add(F.Sub(ten.I).Scale(s))
}

// unjoin splits an error created by errors.Join
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
