package tablesync_test

import (
	"testing"

	"github.com/pseudomuto/chsync/pkg/tablesync"
	"github.com/stretchr/testify/require"
)

func TestKeyAllocator(t *testing.T) {
	tests := []struct {
		name     string
		offset   uint64
		n        int
		expected []uint64
		last     uint64
	}{
		{name: "replace", offset: 0, n: 3, expected: []uint64{1, 2, 3}, last: 3},
		{name: "append", offset: 10, n: 3, expected: []uint64{11, 12, 13}, last: 13},
		{name: "no rows", offset: 5, n: 0, expected: []uint64{}, last: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := tablesync.NewKeyAllocator(tt.offset)

			got := make([]uint64, 0, tt.n)
			for range tt.n {
				got = append(got, keys.Next())
			}

			require.Equal(t, tt.expected, got)
			require.Equal(t, tt.last, keys.Last())
		})
	}
}

func TestKeyAllocator_Bijection(t *testing.T) {
	for _, offset := range []uint64{0, 1, 999, 1 << 40} {
		for _, n := range []int{1, 2, 17, 1000} {
			keys := tablesync.NewKeyAllocator(offset)

			seen := make(map[uint64]struct{}, n)
			for i := range n {
				id := keys.Next()
				require.Equal(t, offset+uint64(i)+1, id)
				seen[id] = struct{}{}
			}

			require.Len(t, seen, n)
			require.Equal(t, offset+uint64(n), keys.Last())
		}
	}
}
