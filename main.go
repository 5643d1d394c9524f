// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hyperep drives finite-strain elastoplastic material points along deformation paths
//
//  Usage:
//   hyperep drive  [file.sim] [--mat file --name material] [--path file | --shear γ | --uniaxial ε] [--db results.db]
//   hyperep batch  file.sim [--npts n]
//   hyperep runs   --db results.db [--id run-id]
//   hyperep convert old.mat new.yaml
//   hyperep prms
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperep/out"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags
var version = "dev"

var rootFlags struct {
	verbose bool
	format  string
}

var rootCmd = &cobra.Command{
	Use:   "hyperep",
	Short: "Finite-strain elastoplastic material point driver",
	Long: "hyperep updates hyper-elastoplastic material points (Johnson-Cook, Zerilli-Armstrong,\n" +
		"power law and linear hardening; Johnson-Cook damage with erosion) along deformation paths.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogger(rootFlags.verbose)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "show debug messages and radial return iterations")
	f.StringVar(&rootFlags.format, "format", "ascii", "table format: ascii, markdown or csv")
	rootCmd.AddCommand(driveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(prmsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.Version = version
}

// setLogger sets the default structured logger
func setLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	io.Verbose = verbose
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
}

// tableFormat converts the --format flag
func tableFormat() (out.Format, error) {
	switch rootFlags.format {
	case "ascii":
		return out.ASCII, nil
	case "markdown", "md":
		return out.Markdown, nil
	case "csv":
		return out.CSV, nil
	}
	return 0, chk.Err("table format %q is invalid; options are \"ascii\", \"markdown\" and \"csv\"", rootFlags.format)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("hyperep failed", "err", err)
		stop()
		os.Exit(1)
	}
}
