package store

import "fmt"

// DataError reports a row that could not be decoded. It signals storage
// corruption and is not recoverable at this layer; callers propagate it
// rather than masking it as an empty result.
type DataError struct {
	Table string
	Key   int64
	Err   error
}

func dataErrf(table string, key int64, err error, format string, args ...any) error {
	return &DataError{Table: table, Key: key, Err: fmt.Errorf(format+": %w", append(args, err)...)}
}

func (e *DataError) Error() string {
	return fmt.Sprintf("table %s key %d: %v", e.Table, e.Key, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}
