// Package schema derives ClickHouse column definitions from untyped tabular data.
//
// Inference is a pure step that produces explicit Column descriptors. Every later
// step (DDL generation, value coercion, inserts) consumes those descriptors rather
// than re-inspecting the data.
//
// # Inference rules
//
// Each column is classified into exactly one Kind:
//
//   - Text if any value is text-like (string, []byte, time.Time, uuid.UUID)
//   - otherwise Float64 if any value is a float or decimal.Decimal
//   - otherwise Int64
//
// Missing values (nil, nil pointers, NaN) don't influence the result and are filled
// with the kind's zero value during coercion. Values of any other type fail with a
// *TypeInferenceError.
//
// # DDL
//
//	cols, err := schema.Infer(f, schema.Comments{"score": "final score"})
//	if err != nil {
//		return err
//	}
//
//	stmt := schema.CreateTable("analytics", "scores", cols, false)
//	// CREATE TABLE `analytics`.`scores` (`id` UInt64, `name` String,
//	// `score` Float64 COMMENT 'final score') ENGINE = MergeTree() ORDER BY (id)
package schema
