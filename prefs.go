package dashmet

import (
	"bytes"
	"log"

	"git.unix.lgbt/diamondburned/dashmet/internal/badgerlog"
	"github.com/dgraph-io/badger/v3"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Preferences is what is remembered about a single client.
type Preferences struct {
	Theme string
}

// PrefStore stores client preferences keyed by an opaque client ID.
type PrefStore struct {
	db *badger.DB
}

var prefsPrefix = []byte("prefs:")

// OpenPrefs opens the preference store in the given directory. If dir is
// empty, the store is kept in memory. Badger's own logs are written to the
// default logger at the given level.
func OpenPrefs(dir string, level badgerlog.Level) (*PrefStore, error) {
	opts := badger.DefaultOptions(dir)
	opts = opts.WithLogger(badgerlog.NewLogger(log.Default(), "prefs", level))
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "badger")
	}

	return &PrefStore{db}, nil
}

// Close closes the store.
func (s *PrefStore) Close() error {
	return s.db.Close()
}

func prefsKey(id string) []byte {
	return append(append([]byte(nil), prefsPrefix...), id...)
}

// Get returns the preferences of the given client. Unknown clients get the
// zero value.
func (s *PrefStore) Get(id string) (Preferences, error) {
	var prefs Preferences

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefsKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}

		return item.Value(func(v []byte) error {
			return decodePrefs(v, &prefs)
		})
	})
	if err != nil {
		return prefs, errors.Wrapf(err, "failed to get prefs of %q", id)
	}

	return prefs, nil
}

// Set stores the preferences of the given client.
func (s *PrefStore) Set(id string, prefs Preferences) error {
	v, err := encodePrefs(prefs)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(prefsKey(id), v)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to set prefs of %q", id)
	}

	return nil
}

func encodePrefs(prefs Preferences) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(versionBytePrefix)
	buf.WriteByte(byte(CurrentVersion))

	if err := cbor.NewEncoder(&buf).Encode(prefs); err != nil {
		return nil, errors.Wrap(err, "failed to marshal")
	}

	return buf.Bytes(), nil
}

func decodePrefs(b []byte, dst *Preferences) error {
	if len(b) < 2 || b[0] != versionBytePrefix || Version(b[1]) != Version2 {
		return errors.New("unknown prefs format")
	}

	return cbor.Unmarshal(b[2:], dst)
}
