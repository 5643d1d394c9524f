// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Format selects how tables are rendered
type Format int

const (
	ASCII    Format = iota // fixed-width terminal table
	Markdown               // GitHub-flavoured Markdown table
	CSV                    // comma separated values
)

// TableHeader holds the column names of results tables
var TableHeader = table.Row{"step", "time", "flag", "nit", "ep", "epdot", "dp", "loc", "σxx", "σyy", "σzz", "σxy", "σvm", "wave"}

// Table renders steps as a table
func Table(steps []Step, format Format) string {
	w := newWriter()
	w.AppendHeader(TableHeader)
	cfgs := make([]table.ColumnConfig, len(TableHeader))
	for i := range cfgs {
		cfgs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight}
	}
	cfgs[2].Align = text.AlignLeft
	w.SetColumnConfigs(cfgs)
	for _, stp := range steps {
		s := stp.State
		loc := ""
		if s.Localized {
			loc = "yes"
		}
		flag := s.Flag.String()
		if s.Weak {
			flag += "*"
		}
		w.AppendRow(table.Row{
			stp.Index, g(stp.Time), flag, s.Nit, g(s.Ep), g(s.EpDot), g(s.Dp), loc,
			g(s.Sig[0][0]), g(s.Sig[1][1]), g(s.Sig[2][2]), g(s.Sig[0][1]), g(s.Sig.Vm()), g(stp.Wave),
		})
	}
	switch format {
	case Markdown:
		return w.RenderMarkdown()
	case CSV:
		return w.RenderCSV()
	}
	return w.Render()
}

// RunsTable renders a list of runs as a table
func RunsTable(runs []Run, format Format) string {
	w := newWriter()
	w.AppendHeader(table.Row{"id", "created", "material", "model", "nsteps", "status", "desc"})
	for _, r := range runs {
		w.AppendRow(table.Row{r.ID, r.Created, r.Material, r.Model, r.Nsteps, r.Status, r.Desc})
	}
	switch format {
	case Markdown:
		return w.RenderMarkdown()
	case CSV:
		return w.RenderCSV()
	}
	return w.Render()
}

// newWriter returns a writer that keeps the header names as given
func newWriter() table.Writer {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	w := table.NewWriter()
	w.SetStyle(style)
	return w
}

func g(x float64) string { return io.Sf("%.6g", x) }
