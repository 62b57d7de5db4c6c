package store

import (
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	rowsBucketName  = "rows"
	metaBucketName  = "meta"
	schemaMetaKey   = "schema"
	defaultFileMode = 0o600
	defaultOpenWait = time.Second
)

// Bolt is a Store backed by a single bbolt file. Each table maps to a root
// bucket holding a "rows" bucket (big-endian uint64 id -> encoded row) and
// a "meta" bucket with the declared schema. Row ids come from the rows
// bucket sequence, so they are positive and never reused within a file.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the store file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, defaultFileMode, &bbolt.Options{Timeout: defaultOpenWait})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the underlying file.
func (s *Bolt) Close() error {
	return s.db.Close()
}

var _ Store = (*Bolt)(nil)

func rowKey(id int64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(id))
	return key[:]
}

func tableBuckets(tx *bbolt.Tx, table string, create bool) (rows, meta *bbolt.Bucket, err error) {
	if create {
		root, err := tx.CreateBucketIfNotExists([]byte(table))
		if err != nil {
			return nil, nil, fmt.Errorf("table %s: %w", table, err)
		}
		rows, err = root.CreateBucketIfNotExists([]byte(rowsBucketName))
		if err != nil {
			return nil, nil, fmt.Errorf("table %s: %w", table, err)
		}
		meta, err = root.CreateBucketIfNotExists([]byte(metaBucketName))
		if err != nil {
			return nil, nil, fmt.Errorf("table %s: %w", table, err)
		}
		return rows, meta, nil
	}
	root := tx.Bucket([]byte(table))
	if root == nil {
		return nil, nil, nil
	}
	return root.Bucket([]byte(rowsBucketName)), root.Bucket([]byte(metaBucketName)), nil
}

func (s *Bolt) EnsureSchema(table string, schema Schema) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, meta, err := tableBuckets(tx, table, true)
		if err != nil {
			return err
		}
		// Re-declaring on every start must not fail or mutate existing
		// declarations; the latest declaration simply wins.
		raw, err := encodeSchema(schema)
		if err != nil {
			return fmt.Errorf("table %s: encode schema: %w", table, err)
		}
		return meta.Put([]byte(schemaMetaKey), raw)
	})
}

func (s *Bolt) Insert(table string, fields Record) (int64, error) {
	var id int64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		rows, meta, err := tableBuckets(tx, table, true)
		if err != nil {
			return err
		}
		seq, err := rows.NextSequence()
		if err != nil {
			return fmt.Errorf("table %s: next id: %w", table, err)
		}
		id = int64(seq)

		row := fields.clone()
		if raw := meta.Get([]byte(schemaMetaKey)); raw != nil {
			schema, err := decodeSchema(table, raw)
			if err != nil {
				return err
			}
			schema.apply(row, time.Now())
		}
		row["id"] = id

		encoded, err := encodeRow(row)
		if err != nil {
			return fmt.Errorf("table %s: encode row: %w", table, err)
		}
		return rows.Put(rowKey(id), encoded)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Bolt) Find(table string, id int64) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		rows, _, err := tableBuckets(tx, table, false)
		if err != nil || rows == nil {
			return err
		}
		raw := rows.Get(rowKey(id))
		if raw == nil {
			return nil
		}
		rec, err = decodeRow(table, id, raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Bolt) FindAll(table string) ([]Record, error) {
	var out []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		rows, _, err := tableBuckets(tx, table, false)
		if err != nil || rows == nil {
			return err
		}
		cur := rows.Cursor()
		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			id := int64(binary.BigEndian.Uint64(k))
			rec, err := decodeRow(table, id, v)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Bolt) Update(table string, id int64, fields Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		rows, _, err := tableBuckets(tx, table, false)
		if err != nil || rows == nil {
			return err
		}
		raw := rows.Get(rowKey(id))
		if raw == nil {
			// Missing id: silent no-op, consistent with Delete.
			return nil
		}
		rec, err := decodeRow(table, id, raw)
		if err != nil {
			return err
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			rec[k] = v
		}
		encoded, err := encodeRow(rec)
		if err != nil {
			return fmt.Errorf("table %s: encode row: %w", table, err)
		}
		return rows.Put(rowKey(id), encoded)
	})
}

func (s *Bolt) Delete(table string, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		rows, _, err := tableBuckets(tx, table, false)
		if err != nil || rows == nil {
			return err
		}
		return rows.Delete(rowKey(id))
	})
}
