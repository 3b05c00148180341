package harness

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dbsmedya/sortbench/internal/record"
)

var (
	// ErrNotSorted is returned when a sorter's output is out of order.
	ErrNotSorted = errors.New("output is not sorted")
	// ErrNotPermutation is returned when a sorter's output does not hold
	// exactly the input records.
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Verify checks that output is input reordered non-decreasingly by key.
func Verify(input, output []record.Record, key record.Key) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: %d records in, %d out", ErrNotPermutation, len(input), len(output))
	}
	if !key.IsSorted(output) {
		return fmt.Errorf("%w by %s", ErrNotSorted, key.Name)
	}
	if in, out := Digest(input), Digest(output); in != out {
		return fmt.Errorf("%w: digest %s != %s", ErrNotPermutation, in[:12], out[:12])
	}
	return nil
}

// Digest returns an order-independent SHA256 digest of records: the hash of
// the sorted per-record hashes. Equal multisets give equal digests.
func Digest(records []record.Record) string {
	rowHashes := make([]string, len(records))
	for i, r := range records {
		rowHashes[i] = hashRecord(r)
	}
	sort.Strings(rowHashes)

	h := sha256.New()
	for _, rh := range rowHashes {
		h.Write([]byte(rh))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func hashRecord(r record.Record) string {
	buf := make([]byte, 0, 64)
	buf = strconv.AppendInt(buf, r.ID, 10)
	buf = append(buf, '|')
	buf = append(buf, r.Name...)
	buf = append(buf, '|')
	buf = strconv.AppendFloat(buf, r.Score, 'g', -1, 64)
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
