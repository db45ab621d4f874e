package volterra

import (
	"github.com/google/uuid"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
)

const (
	// TblRuns is the name of the table holding one row per recorded solve.
	TblRuns = "volterraruns"
	// TblSamples is the name of the table holding the trajectory samples.
	TblSamples = "volterrasamples"
)

func (s *solver) initdb() error {
	if s.db == nil {
		return nil
	}

	sqls := "CREATE TABLE IF NOT EXISTS " + TblRuns +
		" (id TEXT,kernel TEXT,method TEXT,npoints INTEGER,tmax REAL,x0 REAL);"
	_, err := s.db.Exec(sqls)
	if err != nil {
		return err
	}

	sqls = "CREATE TABLE IF NOT EXISTS " + TblSamples +
		" (run TEXT,i INTEGER,t REAL,x REAL);"
	_, err = s.db.Exec(sqls)
	if err != nil {
		return err
	}
	return nil
}

func (s *solver) record(k kexp.Kernel, tmax float64, n int, t, x []float64) error {
	if err := s.initdb(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	sqls := "INSERT INTO " + TblRuns + " (id,kernel,method,npoints,tmax,x0) VALUES (?,?,?,?,?,?);"
	_, err = tx.Exec(sqls, id, kexp.Name(k), s.rule.String(), n, tmax, s.x0)
	if err != nil {
		return err
	}

	sqls = "INSERT INTO " + TblSamples + " (run,i,t,x) VALUES (?,?,?,?);"
	stmt, err := tx.Prepare(sqls)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range t {
		if _, err := stmt.Exec(id, i, t[i], x[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}
