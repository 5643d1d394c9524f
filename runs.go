// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cpmech/hyperep/out"
	"github.com/spf13/cobra"
)

var runsFlags struct {
	db string
	id string
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List runs saved in a results database or show the steps of one run",
	Args:  cobra.NoArgs,
	RunE:  runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.StringVar(&runsFlags.db, "db", "", "results database (required)")
	f.StringVar(&runsFlags.id, "id", "", "run id; shows the steps of this run")
	_ = runsCmd.MarkFlagRequired("db")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	format, err := tableFormat()
	if err != nil {
		return err
	}
	db, err := out.Open(runsFlags.db)
	if err != nil {
		return err
	}
	defer db.Close()
	w := cmd.OutOrStdout()
	if runsFlags.id == "" {
		runs, err := db.Runs()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out.RunsTable(runs, format))
		return nil
	}
	run, err := db.GetRun(runsFlags.id)
	if err != nil {
		return err
	}
	steps, err := db.GetSteps(run.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run %s: %s (%s, %s) status=%s\n", run.ID, run.Material, run.Model, run.Opts, run.Status)
	fmt.Fprintln(w, out.Table(steps, format))
	return nil
}
