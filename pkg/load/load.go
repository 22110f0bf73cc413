// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package load reads a dataset from CSV files.
//
// A dataset directory contains three files with a header row:
//
//	people.csv  id,name,birth
//	movies.csv  id,title,year
//	stars.csv   person_id,movie_id
//
// Columns are found by header name, extra columns are ignored.
// An empty or non-numeric birth or year is treated as unknown.
// Star rows that refer to a missing person or movie are dropped.
package load

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sixdegrees/degrees/internal/pkg/logging"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"golang.org/x/sync/errgroup"
)

var log = logging.Log()

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("load: missing column")

// Files names the CSV files in a dataset directory.
type Files struct {
	People string `json:"people,omitempty"`
	Movies string `json:"movies,omitempty"`
	Stars  string `json:"stars,omitempty"`
}

// DefaultFiles are the standard file names.
var DefaultFiles = Files{People: "people.csv", Movies: "movies.csv", Stars: "stars.csv"}

// WithDefaults returns f with empty names replaced by DefaultFiles.
func (f Files) WithDefaults() Files {
	if f.People == "" {
		f.People = DefaultFiles.People
	}
	if f.Movies == "" {
		f.Movies = DefaultFiles.Movies
	}
	if f.Stars == "" {
		f.Stars = DefaultFiles.Stars
	}
	return f
}

// Dir loads a dataset from the directory dir.
func Dir(ctx context.Context, dir string, files Files) (*dataset.Dataset, error) {
	d, err := FS(ctx, os.DirFS(dir), files)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", dir, err)
	}
	return d, nil
}

// FS loads a dataset from fsys.
//
// People and movies are read concurrently, stars are linked once both are complete.
func FS(ctx context.Context, fsys fs.FS, files Files) (*dataset.Dataset, error) {
	files = files.WithDefaults()
	start := time.Now()
	var people, movies [][]string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		people, err = readFile(gctx, fsys, files.People, "id", "name", "birth")
		return err
	})
	g.Go(func() (err error) {
		movies, err = readFile(gctx, fsys, files.Movies, "id", "title", "year")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := dataset.NewBuilder()
	for _, row := range people {
		if err := b.AddPerson(dataset.PersonID(row[0]), row[1], year(row[2])); err != nil {
			log.V(1).Info("skipping person", "error", err)
		}
	}
	for _, row := range movies {
		if err := b.AddMovie(dataset.MovieID(row[0]), row[1], year(row[2])); err != nil {
			log.V(1).Info("skipping movie", "error", err)
		}
	}
	err := eachRow(ctx, fsys, files.Stars, []string{"person_id", "movie_id"}, func(row []string) {
		if !b.AddStar(dataset.PersonID(row[0]), dataset.MovieID(row[1])) {
			log.V(4).Info("dropping star", "person", row[0], "movie", row[1])
		}
	})
	if err != nil {
		return nil, err
	}
	d := b.Dataset()
	log.V(1).Info("loaded dataset", "stats", logging.JSON(d.Stats()), "elapsed", time.Since(start))
	return d, nil
}

// readFile returns the named columns of every row in a CSV file.
func readFile(ctx context.Context, fsys fs.FS, name string, columns ...string) (rows [][]string, err error) {
	err = eachRow(ctx, fsys, name, columns, func(row []string) { rows = append(rows, row) })
	return rows, err
}

// eachRow calls f with the named columns of each row of a CSV file, in column order.
// The slice passed to f is not reused.
func eachRow(ctx context.Context, fsys fs.FS, name string, columns []string, f func([]string)) error {
	file, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	r := csv.NewReader(file)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1 // Short rows are skipped below.
	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("%v: reading header: %w", name, err)
	}
	index, err := columnIndex(header, columns)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	width := slices.Max(index) + 1
	for n := 0; ; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		record, err := r.Read()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return fmt.Errorf("%v: %w", name, err)
		}
		if len(record) < width {
			line, _ := r.FieldPos(0)
			log.V(1).Info("skipping short row", "file", name, "line", line, "fields", len(record))
			continue
		}
		row := make([]string, len(index))
		for i, j := range index {
			row[i] = record[j]
		}
		f(row)
	}
}

// columnIndex returns the position of each column in header.
func columnIndex(header, columns []string) ([]int, error) {
	index := make([]int, len(columns))
	for i, c := range columns {
		index[i] = -1
		for j, h := range header {
			if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == c { // Tolerate a byte-order mark.
				index[i] = j
				break
			}
		}
		if index[i] < 0 {
			return nil, fmt.Errorf("%w %q in header %q", ErrMissingColumn, c, header)
		}
	}
	return index, nil
}

// year parses a year, returning 0 for unknown.
func year(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
