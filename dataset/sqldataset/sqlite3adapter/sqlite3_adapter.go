/*
Package sqlite3adapter provides an sqldataset.Adapter backed by an
SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/saplingml/sapling/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a limit for open
database connections (0 for no limit) and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3
database.
*/
func New(path string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database at %s: %v", path, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) ColumnName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty identifier")
	}
	if strings.ContainsAny(name, `"`) {
		return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
	}
	return fmt.Sprintf("%q", name), nil
}

func (a *adapter) Placeholder(int) string {
	return "?"
}

func (a *adapter) RealColumnType() string {
	return "REAL"
}
