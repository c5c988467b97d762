// Package history persists REPL input in a bbolt database.  Entries are keyed
// by sequence numbers that increase with every addition and are never reused.
package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketInput = "input"

// ErrNoMatchingCmd is returned when no history entry matches a query.
var ErrNoMatchingCmd = errors.New("no such history entry")

// Entry is an input line stored in the history.
type Entry struct {
	Text string
	Seq  int
}

// Store is a history database.  A Store is safe for use by multiple
// goroutines.
type Store struct {
	db *bolt.DB
}

// Open opens the history database at path, creating it if necessary.  Open
// fails rather than wait if another process holds the database open for more
// than a second.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketInput))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NextSeq returns the sequence number the next call to Add will use.
func (s *Store) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketInput))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Add appends text to the history and returns its sequence number.
func (s *Store) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketInput))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Get returns the entry with the given sequence number.
func (s *Store) Get(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketInput))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingCmd
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Delete removes the entry with the given sequence number.  Deleting a
// missing entry is not an error.
func (s *Store) Delete(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketInput))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Last returns up to n of the most recent entries, oldest first.
func (s *Store) Last(n int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketInput)).Cursor()
		for k, v := c.Last(); k != nil && len(entries) < n; k, v = c.Prev() {
			entries = append(entries, Entry{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
