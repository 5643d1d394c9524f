// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/hyperep/msolid"
	"github.com/cpmech/hyperep/ten"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	descr      TEXT,
	material   TEXT NOT NULL,
	model      TEXT NOT NULL,
	opts       TEXT,
	nsteps     INTEGER NOT NULL,
	status     TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS steps (
	run_id    TEXT NOT NULL,
	idx       INTEGER NOT NULL,
	time      REAL NOT NULL,
	wave      REAL NOT NULL,
	sig       TEXT NOT NULL,
	fp        TEXT NOT NULL,
	ep        REAL NOT NULL,
	epdot     REAL NOT NULL,
	dp        REAL NOT NULL,
	localized INTEGER NOT NULL,
	flag      INTEGER NOT NULL,
	nit       INTEGER NOT NULL,
	weak      INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Run holds the description of one driver run
type Run struct {
	ID       string // run id; set by SaveRun
	Desc     string // description
	Material string // name of material
	Model    string // name of model; e.g. "hyper-ep"
	Opts     string // model options
	Nsteps   int    // number of stored steps, including the initial state
	Status   string // "SUCCESS" or the name of the failure code
	Created  string // creation time (RFC3339, UTC)
}

// Store holds results in a SQLite database
type Store struct {
	db *sql.DB
}

// Open opens or creates a results database
func Open(path string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, chk.Err("cannot create directory for results database: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, chk.Err("cannot open results database %q: %v", path, err)
	}
	for _, stmt := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON", schema} {
		if _, err = db.Exec(stmt); err != nil {
			db.Close()
			return nil, chk.Err("cannot initialise results database %q: %v", path, err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (o *Store) Close() error {
	return o.db.Close()
}

// SaveRun saves a run and its steps in one transaction and returns the new run id
func (o *Store) SaveRun(run Run, steps []Step) (id string, err error) {
	id = uuid.New().String()
	tx, err := o.db.Begin()
	if err != nil {
		return "", chk.Err("begin: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs (run_id, descr, material, model, opts, nsteps, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Desc, run.Material, run.Model, run.Opts, len(steps), run.Status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", chk.Err("insert run: %v", err)
	}

	ins, err := tx.Prepare(`INSERT INTO steps (run_id, idx, time, wave, sig, fp, ep, epdot, dp, localized, flag, nit, weak)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", chk.Err("prepare steps: %v", err)
	}
	defer ins.Close()
	for _, stp := range steps {
		s := stp.State
		sig, err := json.Marshal(s.Sig)
		if err != nil {
			return "", chk.Err("step %d: %v", stp.Index, err)
		}
		fp, err := json.Marshal(s.Fp)
		if err != nil {
			return "", chk.Err("step %d: %v", stp.Index, err)
		}
		_, err = ins.Exec(id, stp.Index, stp.Time, stp.Wave, string(sig), string(fp), s.Ep, s.EpDot, s.Dp,
			btoi(s.Localized), int(s.Flag), s.Nit, btoi(s.Weak))
		if err != nil {
			return "", chk.Err("insert step %d: %v", stp.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", chk.Err("commit: %v", err)
	}
	return id, nil
}

// Runs returns all runs in creation order
func (o *Store) Runs() (runs []Run, err error) {
	rows, err := o.db.Query(`SELECT run_id, descr, material, model, opts, nsteps, status, created_at
		FROM runs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, chk.Err("query runs: %v", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		var desc, opts sql.NullString
		err = rows.Scan(&r.ID, &desc, &r.Material, &r.Model, &opts, &r.Nsteps, &r.Status, &r.Created)
		if err != nil {
			return nil, chk.Err("scan run: %v", err)
		}
		r.Desc, r.Opts = desc.String, opts.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run
func (o *Store) GetRun(id string) (run Run, err error) {
	var desc, opts sql.NullString
	err = o.db.QueryRow(`SELECT run_id, descr, material, model, opts, nsteps, status, created_at
		FROM runs WHERE run_id = ?`, id).Scan(&run.ID, &desc, &run.Material, &run.Model, &opts, &run.Nsteps, &run.Status, &run.Created)
	if err == sql.ErrNoRows {
		return run, chk.Err("cannot find run %q", id)
	}
	if err != nil {
		return run, chk.Err("query run %q: %v", id, err)
	}
	run.Desc, run.Opts = desc.String, opts.String
	return
}

// GetSteps returns the steps of one run ordered by index
func (o *Store) GetSteps(id string) (steps []Step, err error) {
	rows, err := o.db.Query(`SELECT idx, time, wave, sig, fp, ep, epdot, dp, localized, flag, nit, weak
		FROM steps WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, chk.Err("query steps of %q: %v", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var stp Step
		var sig, fp string
		var localized, flag, weak int
		s := new(msolid.State)
		err = rows.Scan(&stp.Index, &stp.Time, &stp.Wave, &sig, &fp, &s.Ep, &s.EpDot, &s.Dp, &localized, &flag, &s.Nit, &weak)
		if err != nil {
			return nil, chk.Err("scan step: %v", err)
		}
		if s.Sig, err = decodeTensor(sig); err != nil {
			return nil, chk.Err("step %d: sig: %v", stp.Index, err)
		}
		if s.Fp, err = decodeTensor(fp); err != nil {
			return nil, chk.Err("step %d: Fp: %v", stp.Index, err)
		}
		s.Localized, s.Flag, s.Weak = localized != 0, msolid.StateFlag(flag), weak != 0
		stp.State = s
		steps = append(steps, stp)
	}
	return steps, rows.Err()
}

func decodeTensor(txt string) (a ten.T, err error) {
	err = json.Unmarshal([]byte(txt), &a)
	return
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
