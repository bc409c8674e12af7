// Package tablesync loads in-memory frames into ClickHouse tables.
//
// A sync infers a storage kind for every input column (see package schema), creates
// or recreates the target table, allocates surrogate keys and streams the rows to the
// server as batched literal INSERT statements.
//
// Two modes are supported:
//
//   - Replace drops the table and loads the input with ids 1..N.
//   - Append keeps the table (creating it when missing) and continues the ids after
//     the current row count.
//
// Ids are owned by the engine. An input column named id is ignored.
//
// Appends read the row count before inserting and are not safe to run concurrently
// against the same table; callers serialize them.
//
// Example usage:
//
//	syncer := tablesync.New(tablesync.Config{Store: client, Logger: logger})
//
//	res, err := syncer.Sync(ctx, tablesync.TableRef{Database: "analytics", Table: "scores"}, f, tablesync.Append)
//	if err != nil {
//		var partial *tablesync.PartialWriteError
//		if errors.As(err, &partial) {
//			log.Printf("%d rows were committed", partial.RowsCommitted)
//		}
//		return err
//	}
//
//	log.Printf("loaded ids %d..%d", res.FirstID, res.LastID)
package tablesync
