package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX 由 *pgxpool.Pool 與 pgx.Tx 共同實作
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner 把一列資料轉成 T，pgx.Row 與 pgx.Rows 都可傳入
type scanner[T any] func(row pgx.Row) (*T, error)

// findOne 回傳第一筆符合的資料；沒有資料時回傳 notFound
func findOne[T any](ctx context.Context, db DBTX, scan scanner[T], notFound error, query string, args ...any) (*T, error) {
	record, err := scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, err
	}
	return record, nil
}

func findMany[T any](ctx context.Context, db DBTX, scan scanner[T], query string, args ...any) ([]*T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*T, 0)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func count(ctx context.Context, db DBTX, query string, args ...any) (int, error) {
	var n int
	if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// whereBuilder 組合 AND 條件與對應的 $n 參數
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(expr string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(expr, len(w.args)))
}

// next 回傳下一個參數位置並加入參數
func (w *whereBuilder) next(arg any) int {
	w.args = append(w.args, arg)
	return len(w.args)
}

func (w *whereBuilder) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}
