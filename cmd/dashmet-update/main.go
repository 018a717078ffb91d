package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.unix.lgbt/diamondburned/dashmet"
	"github.com/pkg/errors"
	"maze.io/x/duration"
)

func main() {
	var (
		dbPath string
		metric string
		value  float64
		at     string
		gcAge  string
		seed   bool
		dump   bool
		since  string
	)

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(),
			"Usage:")
		fmt.Fprintln(flag.CommandLine.Output(),
			"  "+filepath.Base(os.Args[0]), "-db path -metric name -value n [-at time]")
		fmt.Fprintln(flag.CommandLine.Output(),
			"  "+filepath.Base(os.Args[0]), "-db path -gc age")
		fmt.Fprintln(flag.CommandLine.Output(),
			"  "+filepath.Base(os.Args[0]), "-db path -seed")
		fmt.Fprintln(flag.CommandLine.Output(),
			"  "+filepath.Base(os.Args[0]), "-db path -dump -metric name [-since age]")
		fmt.Fprintln(flag.CommandLine.Output(),
			"")
		fmt.Fprintln(flag.CommandLine.Output(),
			"Flags:")
		flag.PrintDefaults()
	}

	flag.StringVar(&dbPath, "db", dbPath, "bbolt database path")
	flag.StringVar(&metric, "metric", metric, "metric to record: revenue, activeUsers or orders")
	flag.Float64Var(&value, "value", value, "value to record")
	flag.StringVar(&at, "at", at, "RFC3339 time of the record, default now")
	flag.StringVar(&gcAge, "gc", gcAge, "delete records older than this age, e.g. 400d")
	flag.BoolVar(&seed, "seed", seed, "record the mock series into the current year")
	flag.BoolVar(&dump, "dump", dump, "print the records of -metric instead of writing")
	flag.StringVar(&since, "since", since, "age of the oldest record to print with -dump, default a year")
	flag.Parse()

	if dbPath == "" {
		log.Fatalln("missing -db flag; refer to -h.")
	}

	var err error

	switch {
	case dump:
		err = dumpRecords(dbPath, metric, since)
	case gcAge != "":
		err = gc(dbPath, gcAge)
	case seed:
		err = seedYear(dbPath)
	default:
		err = record(dbPath, metric, value, at)
	}

	if err != nil {
		log.Fatalln("unexpected error:", err)
	}
}

func parseMetric(metric string) (dashmet.Metric, error) {
	if metric == "" {
		return 0, errors.New("missing -metric flag")
	}

	m := dashmet.ParseMetric(metric)
	if m.String() != metric {
		return 0, fmt.Errorf("unknown metric %q", metric)
	}

	return m, nil
}

func record(dbPath, metric string, value float64, at string) error {
	m, err := parseMetric(metric)
	if err != nil {
		return err
	}

	t := time.Now()
	if at != "" {
		var err error
		t, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return errors.Wrap(err, "invalid -at")
		}
	}

	return withDB(dbPath, func(d *dashmet.Database) error {
		if err := d.Record(dashmet.NewRecord(m, value, t)); err != nil {
			return errors.Wrap(err, "failed to record")
		}

		log.Printf("recorded %s = %v at %s into %s", m, value, t.Format(time.RFC3339), d.Path())
		return nil
	})
}

func dumpRecords(dbPath, metric, since string) error {
	m, err := parseMetric(metric)
	if err != nil {
		return err
	}

	age := dashmet.Year
	if since != "" {
		d, err := duration.ParseDuration(since)
		if err != nil {
			return errors.Wrap(err, "invalid -since")
		}
		age = time.Duration(d)
	}

	d, err := dashmet.Open(dbPath, false)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer d.Close()

	records, err := d.Records(m, time.Now().Add(-age))
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", m)
	}

	for _, r := range records {
		fmt.Printf("%s\t%v\n", r.Time().Format(time.RFC3339), r.Value)
	}

	return nil
}

func seedYear(dbPath string) error {
	return withDB(dbPath, func(d *dashmet.Database) error {
		return errors.Wrap(d.Seed(time.Now().Year(), time.Local), "failed to seed")
	})
}

func gc(dbPath, age string) error {
	d, err := duration.ParseDuration(age)
	if err != nil {
		return errors.Wrap(err, "invalid -gc")
	}

	return withDB(dbPath, func(db *dashmet.Database) error {
		return errors.Wrap(db.GC(time.Duration(d)), "failed to GC")
	})
}

func withDB(dbPath string, fn func(*dashmet.Database) error) error {
	d, err := dashmet.Open(dbPath, true)
	if err != nil {
		return errors.Wrap(err, "failed to open database")
	}
	defer d.Close()

	if err := fn(d); err != nil {
		return err
	}

	if err := d.Close(); err != nil {
		return errors.Wrap(err, "failed to close")
	}

	return nil
}
