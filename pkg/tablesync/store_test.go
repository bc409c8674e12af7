package tablesync_test

import (
	"context"
	"strings"

	"github.com/pseudomuto/chsync/pkg/schema"
)

type (
	fakeStore struct {
		execs    []string
		rowCount uint64
		countErr error
		execFunc func(query string) error
		counted  []string
	}

	describingStore struct {
		*fakeStore

		columns     []schema.Column
		describeErr error
	}
)

func (s *fakeStore) Exec(_ context.Context, query string, _ ...any) error {
	s.execs = append(s.execs, query)
	if s.execFunc != nil {
		return s.execFunc(query)
	}
	return nil
}

func (s *fakeStore) RowCount(_ context.Context, database, table string) (uint64, error) {
	s.counted = append(s.counted, database+"."+table)
	return s.rowCount, s.countErr
}

func (s *fakeStore) inserts() []string {
	var out []string
	for _, q := range s.execs {
		if strings.HasPrefix(q, "INSERT") {
			out = append(out, q)
		}
	}
	return out
}

func (s *describingStore) DescribeTable(context.Context, string, string) ([]schema.Column, error) {
	return s.columns, s.describeErr
}
