// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperep/msolid"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc     string `json:"desc" yaml:"desc"`         // description of simulation
	Matfile  string `json:"matfile" yaml:"matfile"`   // materials file path
	Material string `json:"material" yaml:"material"` // name of material in materials file
	DirOut   string `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/hyperep
	DbFile   string `json:"dbfile" yaml:"dbfile"`     // results database; default = DirOut/key.db
}

// LoadingData holds the deformation path definition
type LoadingData struct {
	Kind   string  `json:"kind" yaml:"kind"`     // "file", "shear" or "uniaxial"
	File   string  `json:"file" yaml:"file"`     // path file when kind == "file"
	Max    float64 `json:"max" yaml:"max"`       // final shear strain or stretch strain
	Nsteps int     `json:"nsteps" yaml:"nsteps"` // number of increments
	Dt     float64 `json:"dt" yaml:"dt"`         // time increment
	Temp   float64 `json:"temp" yaml:"temp"`     // temperature
}

// SetDefault sets default values
func (o *LoadingData) SetDefault() {
	o.Kind = "shear"
	o.Nsteps = 10
	o.Dt = 1
}

// Simulation holds all data for a driver run
type Simulation struct {

	// input
	Data    Data        `json:"data" yaml:"data"`       // global data
	Loading LoadingData `json:"loading" yaml:"loading"` // deformation path
	Workers int         `json:"workers" yaml:"workers"` // maximum number of concurrent updates; 0 means no limit

	// derived
	Key       string       // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	DirOut    string       // directory to save results
	MatParams *MatDb       // materials' parameters
	Mat       *Material    // selected material
	Path      *msolid.Path // deformation path
}

// ReadSim reads all simulation data from a .sim JSON file or a .yaml/.yml file
func ReadSim(simfilepath, alias string) (*Simulation, error) {

	// new sim
	var o Simulation
	o.Loading.SetDefault()

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", simfilepath, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &o)
	default:
		err = json.Unmarshal(b, &o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/hyperep/" + fnkey
	}
	if o.Data.DbFile == "" {
		o.Data.DbFile = filepath.Join(o.DirOut, o.Key+".db")
	}
	if o.Workers < 0 {
		return nil, chk.Err("number of workers must be non-negative; %d is invalid", o.Workers)
	}

	// read materials database
	o.MatParams, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("cannot read materials database:\n%v", err)
	}
	o.Mat = o.MatParams.Get(o.Data.Material)
	if o.Mat == nil {
		return nil, chk.Err("cannot find material %q in %q; available: %v", o.Data.Material, o.Data.Matfile, o.MatParams.Names())
	}

	// deformation path
	o.Path, err = o.Loading.NewPath(dir)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// NewPath allocates the deformation path
func (o LoadingData) NewPath(dir string) (pth *msolid.Path, err error) {
	pth = new(msolid.Path)
	switch o.Kind {
	case "file":
		err = pth.ReadJson(filepath.Join(dir, o.File))
	case "shear":
		err = pth.SetSimpleShear(o.Max, o.Nsteps, o.Dt, o.Temp)
	case "uniaxial":
		err = pth.SetUniaxial(o.Max, o.Nsteps, o.Dt, o.Temp)
	default:
		err = chk.Err("loading kind %q is incorrect; options are \"file\", \"shear\" and \"uniaxial\"", o.Kind)
	}
	if err != nil {
		return nil, err
	}
	return
}
