package tablesync

import (
	"fmt"

	"github.com/pseudomuto/chsync/pkg/schema"
)

// PartialWriteError is returned when an insert fails after at least one earlier batch
// was committed. The committed rows stay in the table; nothing is rolled back.
type PartialWriteError struct {
	Table            TableRef
	BatchesCommitted int
	RowsCommitted    int
	Err              error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf(
		"partial write to %s: %d batches (%d rows) committed before failure: %v",
		e.Table,
		e.BatchesCommitted,
		e.RowsCommitted,
		e.Err,
	)
}

// Unwrap returns the error that interrupted the load.
func (e *PartialWriteError) Unwrap() error { return e.Err }

// Cause makes errors.Cause from github.com/pkg/errors look through the partial write.
func (e *PartialWriteError) Cause() error { return e.Err }

// SchemaMismatchError is returned by an append when the existing table can't hold the
// inferred columns: a column is missing, or text would be written to a numeric column.
type SchemaMismatchError struct {
	Table  TableRef
	Column string

	// Want is the inferred kind. Have is the kind of the existing column, KindUnknown
	// when the column is missing.
	Want schema.Kind
	Have schema.Kind

	Missing bool
}

func (e *SchemaMismatchError) Error() string {
	if e.Missing {
		return fmt.Sprintf("schema mismatch: column %q does not exist in %s", e.Column, e.Table)
	}

	return fmt.Sprintf(
		"schema mismatch: column %q of %s is %s, cannot append %s values",
		e.Column,
		e.Table,
		e.Have,
		e.Want,
	)
}
