// Package cmd provides the CLI commands for chsync.
//
// Commands are urfave/cli/v3 commands registered with fx through the "commands" value
// group and run by Run when the fx app starts. Every command connects to the server
// selected by the global flags:
//
//	chsync --config chsync.yaml --server analytics <command>
//
// # Available Commands
//
//   - sync: infer a schema from a CSV or JSON file and load it into a table
//   - query: run a query and print the result as a table or CSV
//   - exec: execute a statement
//   - databases, create-database: list and create databases
//   - tables, ddl, describe: inspect tables
//   - drop, truncate, count: manage a table
//   - ping: check the connection and print the server version
//
// # Example Usage
//
//	chsync sync --db analytics --table scores scores.csv
//	chsync sync --db analytics --table scores --mode append more.csv
//	chsync query --format csv "SELECT * FROM analytics.scores ORDER BY id"
//	chsync count --db analytics --table scores
package cmd
