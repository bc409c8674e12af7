package clickhouse

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// versionPattern matches 25.7, 25.7.1 and 25.7.1.3 with any suffix
var versionPattern = regexp.MustCompile(`^\s*(\d+)\.(\d+)(?:\.(\d+))?`)

// VersionInfo is the server version as reported by version().
type VersionInfo struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as "major.minor.patch"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast reports whether this version is at least major.minor.
func (v VersionInfo) IsAtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// GetVersion retrieves and parses the server version.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var raw string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to query ClickHouse version")
	}

	version, err := parseVersion(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse ClickHouse version: %s", raw)
	}

	return version, nil
}

// parseVersion handles the shapes version() returns in practice, such as "25.7.1.3",
// "22.8.2.11-testing" and "21.10.3.9 (official build)".
func parseVersion(raw string) (*VersionInfo, error) {
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return nil, errors.Errorf("invalid version format: %q", raw)
	}

	// the pattern guarantees digits, so Atoi can only fail on overflow
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, errors.Wrap(err, "invalid major version")
	}

	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, errors.Wrap(err, "invalid minor version")
	}

	var patch int
	if m[3] != "" {
		if patch, err = strconv.Atoi(m[3]); err != nil {
			return nil, errors.Wrap(err, "invalid patch version")
		}
	}

	return &VersionInfo{Major: major, Minor: minor, Patch: patch, Raw: raw}, nil
}
