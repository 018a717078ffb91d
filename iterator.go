package dashmet

import (
	"bytes"
	"log"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

// IteratorOpts is the options for reading. It describes the metric and range
// of records to read.
type IteratorOpts struct {
	// Metric is the metric whose records are read.
	Metric Metric
	// From is the time to start reading the records backwards. The default
	// zero-value means to read from the latest record.
	From time.Time
	// To is the time to stop reading the records backwards. By default, the
	// zero-value is used, which would read all records. The To time must
	// ALWAYS be before From.
	To time.Time
}

// Iterator is a backwards record iterator over a single metric.
type Iterator struct {
	tx *bbolt.Tx
	cs *bbolt.Cursor

	// current state
	key   []byte
	value []byte
	error error

	// constants
	begin  []byte
	metric Metric
	to     uint32
	from   uint32
}

// newIterator creates a new iterator. See (*Database).Iterator.
func newIterator(db *bbolt.DB, opts IteratorOpts) (*Iterator, error) {
	if !opts.To.IsZero() && !opts.From.IsZero() {
		if !opts.From.After(opts.To) {
			return nil, errors.New("opts.From should be after opts.To")
		}
	}

	tx, err := db.Begin(false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}

	b := tx.Bucket(bucketName)
	if b == nil {
		tx.Rollback()
		return nil, ErrUninitialized
	}

	i := Iterator{
		tx:     tx,
		cs:     b.Cursor(),
		metric: opts.Metric,
		to:     convertWithUnixZero(opts.To),
		from:   convertWithUnixZero(opts.From),
	}

	// If from is 0, then we start at the end of time.
	if i.from == 0 {
		i.begin = recordKey(i.metric, math.MaxUint32)
	} else {
		i.begin = recordKey(i.metric, i.from)
	}

	i.Rewind()

	return &i, nil
}

// Close closes the iterator.
func (i *Iterator) Close() error {
	return i.tx.Rollback()
}

func (i *Iterator) set(k, v []byte) {
	i.key = k
	i.value = v
}

func (i *Iterator) keyTime() uint32 {
	return readUnixBE(i.key[1:])
}

// isValid returns true if the iterator is still within the metric and range.
func (i *Iterator) isValid() bool {
	if i.key == nil || len(i.key) != recordKeyLen || Metric(i.key[0]) != i.metric {
		return false
	}

	if i.to == 0 || i.to <= i.keyTime() {
		return true
	}

	return false
}

// Prev reads the previous record into the given pointer or the latest record
// if the Iterator has never been used before. If r is nil, then the iterator
// is still updated, but no unmarshaling is done.
//
// False is returned if nothing is read and the iterator is exhausted,
// otherwise true is.
func (i *Iterator) Prev(r *Record) bool {
	if !i.isValid() {
		i.key = nil
		return false
	}

	if r != nil {
		if !i.readRecord(r) {
			i.key = nil
			return false
		}
	}

	i.set(i.cs.Prev())
	return true
}

func (i *Iterator) readRecord(r *Record) bool {
	// Unmarshal fail is a fatal error, so we invalidate everything.
	if err := decodeRecord(i.value, r); err != nil {
		i.error = err
		log.Println("readRecord failed:", i.error)
		return false
	}

	r.Metric = i.metric
	r.time = i.keyTime()

	return true
}

// Remaining returns the number of remaining records to read until either the
// database has nothing left or the requested range has been reached. The
// cursor position stays the same by the time this function returns.
func (i *Iterator) Remaining() int {
	if i.key == nil {
		return 0
	}

	// The cursor's key is only valid for the transaction, but it may still be
	// replaced by moving the cursor, so copy it.
	current := append([]byte(nil), i.key...)

	var total int
	for i.Prev(nil) {
		total++
	}

	// Seek back to where we were.
	i.set(i.cs.Seek(current))
	if !bytes.Equal(i.key, current) {
		log.Panicf("Remaining: cannot seek back to last known key %x", current)
	}

	return total
}

// ReadRemaining reads all records from the current position to the end. The
// returned records are in chronological order.
func (i *Iterator) ReadRemaining() []Record {
	total := i.Remaining()
	records := make([]Record, total)

	for total > 0 && i.Prev(&records[total-1]) {
		total--
	}

	return records
}

// Rewind resets the cursor back to the initial position.
func (i *Iterator) Rewind() {
	k, v := i.cs.Seek(i.begin)

	switch {
	case k == nil:
		// Everything is before begin.
		k, v = i.cs.Last()
	case bytes.Compare(k, i.begin) > 0:
		// Seek lands on the first key after begin; step back to be inclusive.
		k, v = i.cs.Prev()
	}

	i.set(k, v)
}

// ReadAll is similar to ReadRemaining, except the cursor is rewound to the
// requested position "from" and read again.
func (i *Iterator) ReadAll() []Record {
	i.Rewind()
	return i.ReadRemaining()
}

// ReadMonths rewinds and folds every record in range into the sum of its
// calendar month in the given location.
func (i *Iterator) ReadMonths(loc *time.Location) ([MonthsPerYear]float64, error) {
	var sums [MonthsPerYear]float64
	var r Record

	i.Rewind()

	for i.Prev(&r) {
		month := r.Time().In(loc).Month()
		sums[month-1] += r.Value
	}

	return sums, i.error
}
