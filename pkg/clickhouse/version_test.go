package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		major   int
		minor   int
		patch   int
		wantErr bool
	}{
		{input: "25.7.1.3", major: 25, minor: 7, patch: 1},
		{input: "21.10.3.9 (official build)", major: 21, minor: 10, patch: 3},
		{input: "22.8.2.11-testing", major: 22, minor: 8, patch: 2},
		{input: "20.3", major: 20, minor: 3},
		{input: "invalid", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := parseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, v)
				return
			}

			require.NoError(t, err)
			require.Equal(t, &VersionInfo{Major: tt.major, Minor: tt.minor, Patch: tt.patch, Raw: tt.input}, v)
		})
	}
}

func TestVersionInfo(t *testing.T) {
	v := VersionInfo{Major: 21, Minor: 10, Patch: 3}
	require.Equal(t, "21.10.3", v.String())

	require.True(t, v.IsAtLeast(21, 10))
	require.True(t, v.IsAtLeast(20, 15))
	require.True(t, v.IsAtLeast(21, 9))
	require.False(t, v.IsAtLeast(21, 11))
	require.False(t, v.IsAtLeast(22, 0))
}

func TestClient_GetVersion(t *testing.T) {
	conn := &fakeConn{row: &fakeRow{values: []any{"25.7.1.3"}}}

	v, err := newClient(conn).GetVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, "25.7.1", v.String())
	require.Equal(t, []string{"SELECT version()"}, conn.queries)
}
