// Package migrate applies the SQL migrations from the migrations directory.
package migrate

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Up opens a short-lived database/sql connection and migrates it to the latest version.
func Up(connString, dir string) error {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err := goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}
