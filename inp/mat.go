// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads materials databases and run configurations
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/hyperep/msolid"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; only "solid" is available
	Model string     `json:"model"` // name of model; e.g. "hyper-ep"
	Extra string     `json:"extra"` // model options; e.g. "hardening=johnson cook;damage=johnson cook"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid msolid.Model `json:"-"` // pointer to actual solid model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Desc      string   `json:"desc"`      // description of database
	Materials MatsData `json:"materials"` // all materials
}

// yaml mirrors of the JSON layout
type yamlPrm struct {
	N string  `yaml:"n"`
	V float64 `yaml:"v"`
}

type yamlMat struct {
	Name  string    `yaml:"name"`
	Type  string    `yaml:"type"`
	Model string    `yaml:"model"`
	Extra string    `yaml:"extra"`
	Prms  []yamlPrm `yaml:"prms"`
}

type yamlDb struct {
	Desc      string    `yaml:"desc"`
	Materials []yamlMat `yaml:"materials"`
}

// ReadMat reads all materials data from a .mat JSON file or from a .yaml/.yml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q: %v", fn, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		mdb, err = decodeMatYaml(b)
	default:
		mdb = new(MatDb)
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}

	// alloc/init models
	err = mdb.init()
	if err != nil {
		return nil, err
	}
	return
}

// decodeMatYaml converts a yaml document into a database
func decodeMatYaml(b []byte) (*MatDb, error) {
	var y yamlDb
	err := yaml.Unmarshal(b, &y)
	if err != nil {
		return nil, err
	}
	mdb := &MatDb{Desc: y.Desc}
	for _, ym := range y.Materials {
		m := &Material{Name: ym.Name, Type: ym.Type, Model: ym.Model, Extra: ym.Extra}
		for _, p := range ym.Prms {
			m.Prms = append(m.Prms, &dbf.P{N: p.N, V: p.V})
		}
		mdb.Materials = append(mdb.Materials, m)
	}
	return mdb, nil
}

// init allocates and initialises all solid models
func (o *MatDb) init() (err error) {
	if len(o.Materials) == 0 {
		return chk.Err("materials database is empty")
	}
	names := make(map[string]bool)
	for _, m := range o.Materials {
		if m.Name == "" {
			return chk.Err("all materials must have a name")
		}
		if names[m.Name] {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		names[m.Name] = true
		if m.Type == "" {
			m.Type = "solid"
		}
		if m.Type != "solid" {
			return chk.Err("material type %q is incorrect; the only option is \"solid\"", m.Type)
		}
		m.Solid, err = msolid.New(m.Model)
		if err != nil {
			return
		}
		err = m.Solid.Init(m.Prms, m.Extra)
		if err != nil {
			return chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Yaml returns the database as a yaml document
func (o MatDb) Yaml() ([]byte, error) {
	y := yamlDb{Desc: o.Desc}
	for _, m := range o.Materials {
		ym := yamlMat{Name: m.Name, Type: m.Type, Model: m.Model, Extra: m.Extra}
		for _, p := range m.Prms {
			ym.Prms = append(ym.Prms, yamlPrm{N: p.N, V: p.V})
		}
		y.Materials = append(y.Materials, ym)
	}
	return yaml.Marshal(&y)
}

// ConvertMat reads a materials file and writes it with the format given by the extension of
// fnNew: yaml for .yaml/.yml and JSON otherwise
func ConvertMat(dir, fnOld, fnNew string) (err error) {
	mdb, err := ReadMat(dir, fnOld)
	if err != nil {
		return
	}
	var b []byte
	switch strings.ToLower(filepath.Ext(fnNew)) {
	case ".yaml", ".yml":
		b, err = mdb.Yaml()
		if err != nil {
			return
		}
	default:
		b = []byte(mdb.String() + "\n")
	}
	err = os.WriteFile(fnNew, b, 0644)
	if err != nil {
		return chk.Err("cannot write materials file %q: %v", fnNew, err)
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	for _, mat := range o.Materials {
		names = append(names, mat.Name)
	}
	return
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "\n      ]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n  \"desc\" : %q,\n%v\n}", o.Desc, o.Materials)
}
