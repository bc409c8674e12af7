// Package clickhouse provides the ClickHouse client used as the table store for syncs.
//
// The client wraps a clickhouse-go native connection and offers the handful of
// operations the sync engine and the CLI need: executing statements, running queries
// into frames, counting rows, describing tables and the usual database and table
// housekeeping (SHOW DATABASES, SHOW TABLES, CREATE DATABASE, DROP, TRUNCATE and
// SHOW CREATE TABLE).
//
// Counting rows of a table that doesn't exist yields zero rather than an error, so an
// append into a fresh table starts its ids at 1.
//
// Example usage:
//
//	client, err := clickhouse.NewClientWithOptions(ctx, "localhost:9000", clickhouse.ClientOptions{
//		Compression: true,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	n, err := client.RowCount(ctx, "analytics", "scores")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f, err := client.Query(ctx, "SELECT name, score FROM analytics.scores ORDER BY id")
//	if err != nil {
//		log.Fatal(err)
//	}
package clickhouse
