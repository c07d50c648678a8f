package postgres

import (
	"encoding/binary"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/pkg/errors"
)

// BackupCollection is an immutable snapshot of the backups of one server ordered by start time,
// label breaking ties. The zero value is an empty collection.
type BackupCollection struct {
	tree *iradix.Tree
}

// collectionKey orders records by start time (sign bit flipped so pre-epoch times sort first), then label.
func collectionKey(record BackupRecord) []byte {
	key := make([]byte, 8, 8+len(record.Label))
	binary.BigEndian.PutUint64(key, uint64(record.StartTime.Unix())^(1<<63))
	return append(key, record.Label...)
}

func NewBackupCollection(records ...BackupRecord) (BackupCollection, error) {
	builder := NewBackupCollectionBuilder()
	for _, record := range records {
		if err := builder.Add(record); err != nil {
			return BackupCollection{}, err
		}
	}
	return builder.Build(), nil
}

// BackupCollectionBuilder accumulates records for a collection. It is not safe for concurrent use.
type BackupCollectionBuilder struct {
	txn    *iradix.Txn
	labels map[string]struct{}
}

func NewBackupCollectionBuilder() *BackupCollectionBuilder {
	return &BackupCollectionBuilder{txn: iradix.New().Txn(), labels: make(map[string]struct{})}
}

// Add inserts a record. A record whose label is already present is rejected.
func (builder *BackupCollectionBuilder) Add(record BackupRecord) error {
	if _, exists := builder.labels[record.Label]; exists {
		return errors.Errorf("backup '%s' is already in the collection", record.Label)
	}
	builder.labels[record.Label] = struct{}{}
	builder.txn.Insert(collectionKey(record), record)
	return nil
}

func (builder *BackupCollectionBuilder) Build() BackupCollection {
	return BackupCollection{tree: builder.txn.Commit()}
}

func (collection BackupCollection) Len() int {
	if collection.tree == nil {
		return 0
	}
	return collection.tree.Len()
}

// Walk visits records in ascending order until visit returns false.
func (collection BackupCollection) Walk(visit func(record BackupRecord) bool) {
	if collection.tree == nil {
		return
	}
	collection.tree.Root().Walk(func(_ []byte, value interface{}) bool {
		return !visit(value.(BackupRecord))
	})
}

// Records returns the records in ascending order.
func (collection BackupCollection) Records() []BackupRecord {
	records := make([]BackupRecord, 0, collection.Len())
	collection.Walk(func(record BackupRecord) bool {
		records = append(records, record)
		return true
	})
	return records
}
