package query

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const colID = "id"

// Table runs the statements shared by every entity table: a generated uuid
// primary key named id plus the columns scanned into T by name.
type Table[T any] struct {
	dialect goqu.DialectWrapper
	name    string
	columns []interface{}
	order   []exp.OrderedExpression
}

func newTable[T any](dialect goqu.DialectWrapper, name string, columns []string, order ...exp.OrderedExpression) Table[T] {
	cols := make([]interface{}, 0, len(columns)+1)
	cols = append(cols, colID)
	for _, c := range columns {
		cols = append(cols, c)
	}
	if len(order) == 0 {
		order = []exp.OrderedExpression{goqu.I(colID).Asc()}
	}
	return Table[T]{dialect: dialect, name: name, columns: cols, order: order}
}

func (t Table[T]) Name() string {
	return t.name
}

func (t Table[T]) selectAll() *goqu.SelectDataset {
	return t.dialect.From(t.name).Select(t.columns...).Prepared(true)
}

func (t Table[T]) InsertSQL(rec goqu.Record) (string, []interface{}, error) {
	return build(t.dialect.Insert(t.name).Rows(rec).Returning(colID).Prepared(true))
}

func (t Table[T]) GetByIDSQL(id uuid.UUID) (string, []interface{}, error) {
	return build(t.selectAll().Where(goqu.C(colID).Eq(id)))
}

func (t Table[T]) LockByIDSQL(id uuid.UUID) (string, []interface{}, error) {
	return build(t.selectAll().Where(goqu.C(colID).Eq(id)).ForUpdate(exp.Wait))
}

func (t Table[T]) UpdateSQL(id uuid.UUID, rec goqu.Record) (string, []interface{}, error) {
	return build(t.dialect.Update(t.name).Set(rec).Where(goqu.C(colID).Eq(id)).Prepared(true))
}

func (t Table[T]) DeleteSQL(id uuid.UUID) (string, []interface{}, error) {
	return build(t.dialect.Delete(t.name).Where(goqu.C(colID).Eq(id)).Prepared(true))
}

func (t Table[T]) FindSQL(where goqu.Ex) (string, []interface{}, error) {
	ds := t.selectAll()
	if len(where) > 0 {
		ds = ds.Where(where)
	}
	return build(ds.Order(t.order...))
}

func (t Table[T]) Insert(ctx context.Context, db DBTX, rec goqu.Record) (uuid.UUID, error) {
	sql, args, err := t.InsertSQL(rec)
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetByID returns pgx.ErrNoRows when no row matches and pgx.ErrTooManyRows
// when more than one does.
func (t Table[T]) GetByID(ctx context.Context, db DBTX, id uuid.UUID) (T, error) {
	sql, args, err := t.GetByIDSQL(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.collectOne(ctx, db, sql, args)
}

// LockByID is GetByID plus a row lock held until the surrounding
// transaction ends.
func (t Table[T]) LockByID(ctx context.Context, db DBTX, id uuid.UUID) (T, error) {
	sql, args, err := t.LockByIDSQL(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.collectOne(ctx, db, sql, args)
}

func (t Table[T]) Update(ctx context.Context, db DBTX, id uuid.UUID, rec goqu.Record) (int64, error) {
	sql, args, err := t.UpdateSQL(id, rec)
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (t Table[T]) Delete(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	sql, args, err := t.DeleteSQL(id)
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Find lists the rows matching every column/value pair in where; an empty
// where lists the whole table.
func (t Table[T]) Find(ctx context.Context, db DBTX, where goqu.Ex) ([]T, error) {
	sql, args, err := t.FindSQL(where)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (t Table[T]) collectOne(ctx context.Context, db DBTX, sql string, args []interface{}) (T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}
