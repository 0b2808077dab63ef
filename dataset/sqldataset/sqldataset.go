/*
Package sqldataset reads and writes datasets on SQL databases: one table
per dataset, one column per feature plus a label column, one row per
sample. Database-specific behavior is provided by Adapter
implementations in the backend subpackages.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/feature"
)

/*
Adapter is an interface providing the methods needed to read and write
sample tables on a specific SQL database.

Its DB method returns the underlying database handle. Its ColumnName
method validates a feature, label or table name and returns it quoted as
an identifier or an error if the name cannot be used. Its Placeholder
method returns the statement parameter placeholder for the 1-based
position passed as parameter. Its RealColumnType method returns the SQL
type used for real feature columns.
*/
type Adapter interface {
	DB() *sql.DB
	ColumnName(string) (string, error)
	Placeholder(int) string
	RealColumnType() string
}

/*
Read takes a context, an adapter, a table name, a slice of features and
the name of the label column, and returns a dataset with every sample
row in the table or an error. Real feature columns must hold numeric
non-NULL values and categorical and label columns textual non-NULL
values.
*/
func Read(ctx context.Context, a Adapter, table string, features []*feature.Feature, label string) (*dataset.Dataset, error) {
	ds, err := dataset.New(features)
	if err != nil {
		return nil, err
	}
	columns, err := columnList(a, features, label)
	if err != nil {
		return nil, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return nil, fmt.Errorf("invalid table name: %v", err)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), tableName)
	rows, err := a.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying samples from %s: %v", table, err)
	}
	defer rows.Close()
	for i := 0; rows.Next(); i++ {
		dest := make([]interface{}, 0, len(features)+1)
		for _, f := range features {
			if f.Kind() == feature.Real {
				dest = append(dest, new(float64))
			} else {
				dest = append(dest, new(string))
			}
		}
		rawLabel := new(string)
		dest = append(dest, rawLabel)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning sample %d from %s: %v", i, table, err)
		}
		row := make([]interface{}, len(features))
		for j, f := range features {
			if f.Kind() == feature.Real {
				row[j] = *dest[j].(*float64)
			} else {
				row[j] = *dest[j].(*string)
			}
		}
		if err := ds.Append(row, *rawLabel); err != nil {
			return nil, fmt.Errorf("reading sample %d from %s: %v", i, table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading samples from %s: %v", table, err)
	}
	return ds, nil
}

/*
Write takes a context, an adapter, a table name, a dataset and the name
of the label column, creates the sample table if it does not exist and
inserts every sample of the dataset into it within one transaction. It
returns the number of samples written or an error.
*/
func Write(ctx context.Context, a Adapter, table string, ds *dataset.Dataset, label string) (int, error) {
	features := ds.Features()
	columns, err := columnList(a, features, label)
	if err != nil {
		return 0, err
	}
	tableName, err := a.ColumnName(table)
	if err != nil {
		return 0, fmt.Errorf("invalid table name: %v", err)
	}
	if err := createTable(ctx, a, tableName, features, columns); err != nil {
		return 0, err
	}
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = a.Placeholder(i + 1)
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning samples transaction: %v", err)
	}
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing samples insertion statement: %v", err)
	}
	defer stmt.Close()
	labels := ds.Labels()
	for i, row := range ds.Rows() {
		args := make([]interface{}, 0, len(row)+1)
		args = append(args, row...)
		args = append(args, labels[i])
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting sample %d into %s: %v", i, table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing samples transaction: %v", err)
	}
	return ds.Count(), nil
}

func columnList(a Adapter, features []*feature.Feature, label string) ([]string, error) {
	columns := make([]string, 0, len(features)+1)
	for _, f := range features {
		column, err := a.ColumnName(f.Name())
		if err != nil {
			return nil, err
		}
		columns = append(columns, column)
	}
	labelColumn, err := a.ColumnName(label)
	if err != nil {
		return nil, err
	}
	return append(columns, labelColumn), nil
}

func createTable(ctx context.Context, a Adapter, tableName string, features []*feature.Feature, columns []string) error {
	definitions := make([]string, 0, len(columns))
	for j, f := range features {
		columnType := "TEXT"
		if f.Kind() == feature.Real {
			columnType = a.RealColumnType()
		}
		definitions = append(definitions, fmt.Sprintf("%s %s NOT NULL", columns[j], columnType))
	}
	definitions = append(definitions, fmt.Sprintf("%s TEXT NOT NULL", columns[len(columns)-1]))
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", tableName, strings.Join(definitions, ", "))
	if _, err := a.DB().ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("creating sample table %s: %v", tableName, err)
	}
	return nil
}
