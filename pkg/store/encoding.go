package store

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Rows are stored as msgpack maps with sorted keys so encodings are
// deterministic. Handlers never see the encoded form.

func encodeRow(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(map[string]any(r)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRow(table string, key int64, data []byte) (Record, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, dataErrf(table, key, err, "decode row")
	}
	r := Record(m)
	r["id"] = key
	return r, nil
}

func encodeSchema(s Schema) ([]byte, error) {
	return msgpack.Marshal(s)
}

func decodeSchema(table string, data []byte) (Schema, error) {
	var s Schema
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, dataErrf(table, 0, err, "decode schema")
	}
	return s, nil
}
