package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/saplingml/sapling/dataset"
	"github.com/saplingml/sapling/dataset/csv"
	"github.com/saplingml/sapling/dataset/mongodataset"
	"github.com/saplingml/sapling/dataset/sqldataset"
	"github.com/saplingml/sapling/dataset/sqldataset/pgadapter"
	"github.com/saplingml/sapling/dataset/sqldataset/sqlite3adapter"
	"github.com/saplingml/sapling/feature"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

/*
dataIOConfig holds the flags shared by every command that reads or
writes datasets: the sample table name for SQL backends and the limit
on open database connections.
*/
type dataIOConfig struct {
	*rootCmdConfig
	table      string
	maxDBConns int
}

func (dio *dataIOConfig) registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&(dio.table), "table", "samples", "name of the table holding the samples on SQL database inputs and outputs")
	cmd.PersistentFlags().IntVar(&(dio.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

/*
readDataset reads the dataset at the given input: an empty input reads
CSV from STDIN, a postgresql:// URL reads a PostgreSQL sample table, a
mongodb:// URL reads a MongoDB samples collection, a path ending in .db
reads an SQLite3 sample table and any other path reads a CSV file.
*/
func (dio *dataIOConfig) readDataset(ctx context.Context, input string, features []*feature.Feature, label string, purpose string) (*dataset.Dataset, error) {
	if input == "" {
		dio.Logf("Reading %s set from STDIN...", purpose)
		return csv.ReadDataset(os.Stdin, features, label)
	}
	if strings.HasPrefix(input, "postgresql://") {
		dio.Logf("Creating PostgreSQL adapter for url %s to read %s set...", input, purpose)
		adapter, err := pgadapter.New(input, dio.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.DB().Close()
		return sqldataset.Read(ctx, adapter, dio.table, features, label)
	}
	if strings.HasPrefix(input, "mongodb://") {
		dio.Logf("Connecting to MongoDB at %s to read %s set...", input, purpose)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to mongodb at %s: %v", input, err)
		}
		defer session.Close()
		collection, err := mongodataset.Open(session, features, label)
		if err != nil {
			return nil, err
		}
		return collection.Read(ctx)
	}
	if strings.HasSuffix(input, ".db") {
		dio.Logf("Creating SQLite3 adapter for file %s to read %s set...", input, purpose)
		adapter, err := sqlite3adapter.New(input, dio.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.DB().Close()
		return sqldataset.Read(ctx, adapter, dio.table, features, label)
	}
	dio.Logf("Opening %s to read %s set...", input, purpose)
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening %s set at %s: %v", purpose, input, err)
	}
	defer f.Close()
	return csv.ReadDataset(f, features, label)
}

/*
writeDataset writes the dataset to the given output, dispatching on the
output the same way readDataset does on the input; an empty output
writes CSV to STDOUT.
*/
func (dio *dataIOConfig) writeDataset(ctx context.Context, output string, ds *dataset.Dataset, label string, purpose string) error {
	if output == "" {
		dio.Logf("Writing %s set to STDOUT...", purpose)
		return csv.WriteDataset(os.Stdout, ds, label)
	}
	if strings.HasPrefix(output, "postgresql://") {
		dio.Logf("Creating PostgreSQL adapter for url %s to write %s set...", output, purpose)
		adapter, err := pgadapter.New(output, dio.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.DB().Close()
		_, err = sqldataset.Write(ctx, adapter, dio.table, ds, label)
		return err
	}
	if strings.HasPrefix(output, "mongodb://") {
		dio.Logf("Connecting to MongoDB at %s to write %s set...", output, purpose)
		session, err := mgo.Dial(output)
		if err != nil {
			return fmt.Errorf("connecting to mongodb at %s: %v", output, err)
		}
		defer session.Close()
		collection, err := mongodataset.Open(session, ds.Features(), label)
		if err != nil {
			return err
		}
		_, err = collection.Write(ctx, ds)
		return err
	}
	if strings.HasSuffix(output, ".db") {
		dio.Logf("Creating SQLite3 adapter for file %s to write %s set...", output, purpose)
		adapter, err := sqlite3adapter.New(output, dio.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.DB().Close()
		_, err = sqldataset.Write(ctx, adapter, dio.table, ds, label)
		return err
	}
	dio.Logf("Creating %s to write %s set...", output, purpose)
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s set at %s: %v", purpose, output, err)
	}
	defer f.Close()
	return csv.WriteDataset(f, ds, label)
}
