// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"path/filepath"

	"github.com/cpmech/hyperep/inp"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert old.mat new.yaml",
	Short: "Convert a materials file between JSON (.mat) and yaml (.yaml, .yml)",
	Long: "Convert a materials file. The output format is selected by the extension of the new file.\n" +
		"All materials are initialised before writing, so invalid parameters are reported.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := inp.ConvertMat(filepath.Dir(args[0]), filepath.Base(args[0]), args[1])
		if err != nil {
			return err
		}
		slog.Info("conversion successful", "file", args[1])
		return nil
	},
}
