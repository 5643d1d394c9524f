// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperep/inp"
	"github.com/cpmech/hyperep/msolid"
	"github.com/cpmech/hyperep/out"
	"github.com/spf13/cobra"
)

var driveFlags struct {
	mat      string
	name     string
	path     string
	shear    float64
	uniaxial float64
	steps    int
	dt       float64
	temp     float64
	db       string
	alias    string
}

var driveCmd = &cobra.Command{
	Use:   "drive [file.sim]",
	Short: "Run one material point along a deformation path",
	Long: "Run one material point along a deformation path given by a simulation file (.sim or .yaml)\n" +
		"or by the --mat/--name and loading flags. Results are printed as a table and optionally\n" +
		"saved to a SQLite database.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDrive,
}

func init() {
	f := driveCmd.Flags()
	f.StringVar(&driveFlags.mat, "mat", "", "materials file (.mat JSON or .yaml)")
	f.StringVar(&driveFlags.name, "name", "", "name of material in materials file")
	f.StringVar(&driveFlags.path, "path", "", "deformation path file (JSON)")
	f.Float64Var(&driveFlags.shear, "shear", 0.05, "final simple shear strain γ")
	f.Float64Var(&driveFlags.uniaxial, "uniaxial", 0, "final uniaxial strain ε; overrides --shear")
	f.IntVar(&driveFlags.steps, "steps", 10, "number of steps")
	f.Float64Var(&driveFlags.dt, "dt", 1e-3, "time step size")
	f.Float64Var(&driveFlags.temp, "temp", 298, "temperature")
	f.StringVar(&driveFlags.db, "db", "", "results database; default with a simulation file: <dirout>/<key>.db")
	f.StringVar(&driveFlags.alias, "alias", "", "word added to the simulation key")
}

// driveInput returns the material, path and database file
func driveInput(cmd *cobra.Command, args []string) (mat *inp.Material, desc string, pth *msolid.Path, dbfile string, err error) {

	// simulation file
	if len(args) == 1 {
		sim, err := inp.ReadSim(args[0], driveFlags.alias)
		if err != nil {
			return nil, "", nil, "", err
		}
		dbfile = sim.Data.DbFile
		if cmd.Flags().Changed("db") {
			dbfile = driveFlags.db
		}
		return sim.Mat, sim.Data.Desc, sim.Path, dbfile, nil
	}

	// flags
	if driveFlags.mat == "" || driveFlags.name == "" {
		return nil, "", nil, "", chk.Err("either a simulation file or both --mat and --name must be given")
	}
	mdb, err := inp.ReadMat(filepath.Dir(driveFlags.mat), filepath.Base(driveFlags.mat))
	if err != nil {
		return
	}
	mat = mdb.Get(driveFlags.name)
	if mat == nil {
		return nil, "", nil, "", chk.Err("cannot find material %q; available: %v", driveFlags.name, mdb.Names())
	}
	ld := inp.LoadingData{Kind: "shear", Max: driveFlags.shear, Nsteps: driveFlags.steps, Dt: driveFlags.dt, Temp: driveFlags.temp}
	switch {
	case driveFlags.path != "":
		ld.Kind, ld.File = "file", driveFlags.path
	case driveFlags.uniaxial != 0:
		ld.Kind, ld.Max = "uniaxial", driveFlags.uniaxial
	}
	pth, err = ld.NewPath(".")
	if err != nil {
		return
	}
	desc = io.Sf("%s: %s %g", mat.Name, ld.Kind, ld.Max)
	return mat, desc, pth, driveFlags.db, nil
}

func runDrive(cmd *cobra.Command, args []string) error {
	format, err := tableFormat()
	if err != nil {
		return err
	}
	mat, desc, pth, dbfile, err := driveInput(cmd, args)
	if err != nil {
		return err
	}
	slog.Info("drive", "material", mat.Name, "model", mat.Model, "opts", mat.Solid.GetOpts(), "nsteps", len(pth.Steps))

	// run
	var drv msolid.Driver
	err = drv.InitWithModel(mat.Solid)
	if err != nil {
		return err
	}
	drv.Verbose = rootFlags.verbose
	runErr := drv.Run(pth)
	if runErr != nil {
		slog.Warn("driver stopped", "err", runErr)
	}
	steps := out.Steps(&drv)
	fmt.Fprintln(cmd.OutOrStdout(), out.Table(steps, format))

	// save
	if dbfile != "" {
		db, err := out.Open(dbfile)
		if err != nil {
			return err
		}
		defer db.Close()
		id, err := db.SaveRun(out.Run{
			Desc:     desc,
			Material: mat.Name,
			Model:    mat.Model,
			Opts:     mat.Solid.GetOpts(),
			Status:   out.Status(runErr),
		}, steps)
		if err != nil {
			return err
		}
		slog.Info("results saved", "db", dbfile, "run", id)
	}
	return runErr
}
