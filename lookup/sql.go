package lookup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/authcorp/libs/go/tiger/option"
)

// Querier is the single-row subset of sqlx.DB, sqlx.Tx and sqlx.Conn.
type Querier interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
	_ Querier = (*sqlx.Conn)(nil)
)

// GetOne scans the first row of query into a T. No rows is None.
func GetOne[T any](ctx context.Context, q Querier, query string, args ...any) (option.Option[T], error) {
	var dest T
	err := q.GetContext(ctx, &dest, query, args...)
	o, err := FromResult(dest, err, sql.ErrNoRows)
	if err != nil {
		return o, fmt.Errorf("query one: %w", err)
	}
	return o, nil
}

// GetNamed is GetOne with a named query bound from arg.
func GetNamed[T any](ctx context.Context, db *sqlx.DB, query string, arg any) (option.Option[T], error) {
	bound, args, err := db.BindNamed(query, arg)
	if err != nil {
		return option.None[T](), fmt.Errorf("bind named query: %w", err)
	}
	return GetOne[T](ctx, db, bound, args...)
}
