/*
Package pgadapter provides an sqldataset.Adapter backed by a PostgreSQL
database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"
	"strings"

	// Import of postgres driver
	_ "github.com/lib/pq"
	"github.com/saplingml/sapling/dataset/sqldataset"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and a limit for open database
connections (0 for no limit) and returns an Adapter that works on the
database it points to or an error if the database cannot be reached.
*/
func New(url string, maxConns int) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database at %s: %v", url, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgresql database at %s: %v", url, err)
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

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

func (a *adapter) RealColumnType() string {
	return "DOUBLE PRECISION"
}
