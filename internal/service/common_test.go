package service_test

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// fakeTx 只記錄 Commit / Rollback，其餘方法不應被 service 直接呼叫
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeDB struct {
	tx     *fakeTx
	err    error
	begins int
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (f *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	f.begins++
	if f.err != nil {
		return nil, f.err
	}
	return f.tx, nil
}

var errDB = errors.New("db error")
