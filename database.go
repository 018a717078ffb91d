package dashmet

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

// bucketName is the bbolt bucket holding all records.
var bucketName = []byte("dashmet-v1")

// Version is the type for the version of the record format.
type Version uint8

const (
	// Version1 records are plain JSON.
	Version1 Version = iota + 1
	// Version2 records are CBOR.
	Version2
)

// this is never a valid JSON character
const versionBytePrefix = 0xFE

// CurrentVersion is the version that records will be written as.
const CurrentVersion = Version2

// Convenient inaccurate time constants.
const (
	Day  = 24 * time.Hour
	Year = 365 * Day
)

// ErrUninitialized is returned when the records bucket is not found in the
// database. This may happen when nothing was ever recorded.
var ErrUninitialized = errors.New("bucket not initialized")

// Record is a single recorded value of a metric.
type Record struct {
	Metric Metric
	Value  float64

	time uint32
}

// NewRecord creates a new record at the given time, truncated to seconds.
func NewRecord(m Metric, v float64, t time.Time) Record {
	return Record{
		Metric: m,
		Value:  v,
		time:   convertWithUnixZero(t),
	}
}

func (r Record) Time() time.Time { return time.Unix(r.UnixTime(), 0) }
func (r Record) UnixTime() int64 { return int64(r.time) }

// Database describes a wrapped database instance.
type Database struct {
	db *bbolt.DB
}

var _ Source = (*Database)(nil)

// Open opens a database. Databases must be closed once they're done.
func Open(path string, write bool) (*Database, error) {
	b, err := bbolt.Open(path, os.ModePerm, &bbolt.Options{
		Timeout:      time.Minute,
		FreelistType: bbolt.FreelistArrayType,
		ReadOnly:     !write,
	})
	if err != nil {
		return nil, errors.Wrap(err, "bbolt")
	}

	return &Database{b}, nil
}

// Path returns the path to the database file.
func (db *Database) Path() string {
	return db.db.Path()
}

// Close closes the database. Calling Close twice does nothing.
func (db *Database) Close() error {
	return db.db.Close()
}

// Record writes a single record into the database. Records of the same metric
// at the same second overwrite each other.
func (db *Database) Record(r Record) error {
	if db.db.IsReadOnly() {
		return errors.New("database not writable")
	}

	v, err := encodeRecord(r)
	if err != nil {
		return err
	}
	k := recordKey(r.Metric, r.time)

	tx := func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return errors.Wrap(err, "failed to create bucket")
		}

		return b.Put(k, v)
	}

	if err = db.db.Update(tx); err != nil {
		return errors.Wrap(err, "failed to update db")
	}

	return nil
}

// Seed records the mock series of every metric into the given year, one record
// on the first day of each month.
func (db *Database) Seed(year int, loc *time.Location) error {
	start, _ := yearBounds(year, loc)

	for _, m := range Metrics {
		for _, sample := range Generate(m) {
			t := start.AddDate(0, sample.Index, 0)
			if err := db.Record(NewRecord(m, sample.Value, t)); err != nil {
				return errors.Wrapf(err, "failed to seed %s %s", m, sample.Label)
			}
		}
	}

	return nil
}

// GC deletes all records older than the given age. Since this is a fairly
// expensive operation, it should only be called rarely.
func (db *Database) GC(age time.Duration) error {
	if db.db.IsReadOnly() {
		return errors.New("database not writable")
	}

	return db.gc(staleBefore(time.Now(), age))
}

// staleBefore returns the unix time before which records are older than age.
// An age reaching back past the unix epoch makes nothing stale.
func staleBefore(now time.Time, age time.Duration) uint32 {
	before := now.Unix() - int64(age/time.Second)
	if before <= 0 {
		return 0
	}
	return convertWithUnixZero(time.Unix(before, 0))
}

func (db *Database) gc(before uint32) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return ErrUninitialized
		}

		// Deleting under a moving cursor skips keys, so collect them first.
		var stale [][]byte

		cs := b.Cursor()
		for k, _ := cs.First(); k != nil; k, _ = cs.Next() {
			if len(k) == recordKeyLen && readUnixBE(k[1:]) < before {
				stale = append(stale, append([]byte(nil), k...))
			}
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return errors.Wrap(err, "failed to delete record")
			}
		}

		return nil
	})
}

// Samples implements Source. It folds the current year's records into months.
func (db *Database) Samples(m Metric) ([]Sample, error) {
	return db.YearSamples(m, time.Now().Year(), time.Local)
}

// FileSource is a Source backed by the database file at the given path. The
// database is opened read-only for each read and closed right after, so a
// writer is never locked out for long.
type FileSource string

var _ Source = FileSource("")

// Samples implements Source.
func (path FileSource) Samples(m Metric) ([]Sample, error) {
	db, err := Open(string(path), false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open")
	}
	defer db.Close()

	return db.Samples(m)
}

// YearSamples folds the records of the given year into 12 monthly sums.
// Months without records are zero.
func (db *Database) YearSamples(m Metric, year int, loc *time.Location) ([]Sample, error) {
	start, end := yearBounds(year, loc)

	iter, err := db.Iterator(IteratorOpts{
		Metric: m,
		// The iterator goes backwards and From is inclusive.
		From: end.Add(-time.Second),
		To:   start,
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	sums, err := iter.ReadMonths(loc)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s of %d", m, year)
	}

	return monthSamples(sums), nil
}

// Records returns the records of the given metric written since the given
// time, in chronological order.
func (db *Database) Records(m Metric, since time.Time) ([]Record, error) {
	iter, err := db.Iterator(IteratorOpts{Metric: m, To: since})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	return iter.ReadAll(), nil
}

// Iterator returns a new database iterator with second precision. The iterator
// must be closed after it's done.
func (db *Database) Iterator(opts IteratorOpts) (*Iterator, error) {
	return newIterator(db.db, opts)
}

func encodeRecord(r Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64)
	err := encodeRecordBuf(r, &buf)
	return buf.Bytes(), err
}

func encodeRecordBuf(r Record, buf *bytes.Buffer) error {
	buf.WriteByte(versionBytePrefix)
	buf.WriteByte(byte(CurrentVersion))

	if err := cbor.NewEncoder(buf).Encode(r); err != nil {
		return errors.Wrap(err, "failed to marshal")
	}

	return nil
}

func decodeRecord(b []byte, dst *Record) (err error) {
	if len(b) < 2 || b[0] != versionBytePrefix {
		err = json.Unmarshal(b, dst)
		return
	}

	version := Version(b[1])
	b = b[2:]

	switch version {
	case Version1:
		err = json.Unmarshal(b, dst)
	case Version2:
		err = cbor.Unmarshal(b, dst)
	default:
		err = fmt.Errorf("unknown version %d", version)
	}

	return
}

// recordKeyLen is the length of a record key: the metric byte followed by the
// big-endian Unix time.
const recordKeyLen = 1 + 4

func recordKey(m Metric, unix uint32) []byte {
	b := make([]byte, recordKeyLen)
	b[0] = byte(m)
	binary.BigEndian.PutUint32(b[1:], unix)
	return b
}

func readUnixBE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// convertWithUnixZero converts a time.Time to Unix, or if time.Time is zero,
// then 0 is returned.
func convertWithUnixZero(t time.Time) uint32 {
	if t.IsZero() {
		return 0
	}
	return uint32(t.Unix())
}
