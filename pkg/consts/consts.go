package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the server registry used when no --config flag is given
	DefaultConfigFile = "chsync.yaml"

	// DevConfigFile is the server registry used with --dev
	DevConfigFile = "chsync.dev.yaml"

	// DefaultClickHouseVersion is the server image used by test containers
	DefaultClickHouseVersion = "25.7"

	// DefaultPort is the native protocol port
	DefaultPort = 9000

	// DefaultUsername is the ClickHouse user assumed when none is configured
	DefaultUsername = "default"

	// DefaultBatchSize is the maximum number of rows sent in a single INSERT
	DefaultBatchSize = 1_000_000

	// IDColumn is the engine-owned surrogate key column
	IDColumn = "id"

	// UpdateTimeColumn is injected into every synced table that doesn't already carry it
	UpdateTimeColumn = "update_time"

	// TimestampLayout is the format used for update_time and time.Time values
	TimestampLayout = "2006-01-02 15:04:05"
)
