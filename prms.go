// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cpmech/hyperep/inp"
	"github.com/cpmech/hyperep/msolid"
	"github.com/spf13/cobra"
)

// ExampleOpts holds the options of the example material
const ExampleOpts = "elastic=neo hookean;hardening=johnson cook;rate=johnson cook;damage=johnson cook;erosion=no tension"

var prmsCmd = &cobra.Command{
	Use:   "prms [model]",
	Short: "Print a materials file with example parameters",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "hyper-ep"
		if len(args) == 1 {
			name = args[0]
		}
		mdl, err := msolid.New(name)
		if err != nil {
			return err
		}
		err = mdl.Init(mdl.GetPrms(), ExampleOpts)
		if err != nil {
			return err
		}
		mdb := inp.MatDb{
			Desc: "example parameters of " + name,
			Materials: inp.MatsData{{
				Name:  "example",
				Type:  "solid",
				Model: name,
				Extra: mdl.GetOpts(),
				Prms:  mdl.GetPrms(),
			}},
		}
		fmt.Fprintln(cmd.OutOrStdout(), mdb)
		return nil
	},
}
