package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	perr "decompound/internal/platform/errors"
)

type fakeQuerier struct {
	rows     Rows
	queryErr error
	row      Row

	lastSQL  string
	lastArgs []any
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.rows, f.queryErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

type fakeRow struct {
	val any
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	reflect.ValueOf(dest[0]).Elem().Set(reflect.ValueOf(r.val))
	return nil
}

type fakeRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newRows(cols []string, data ...[]any) *fakeRows {
	return &fakeRows{cols: cols, data: data, idx: -1}
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.idx]
	if len(dest) != len(row) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func scanWord(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestScalar(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{row: fakeRow{val: true}}
	ok, err := Scalar[bool](context.Background(), q, "select exists(...)", "Fußball")
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
	if len(q.lastArgs) != 1 || q.lastArgs[0] != "Fußball" {
		t.Fatalf("args not forwarded: %v", q.lastArgs)
	}

	q = &fakeQuerier{row: fakeRow{err: errors.New("scan")}}
	if _, err := Scalar[bool](context.Background(), q, "x"); err == nil {
		t.Fatal("expected scan error")
	}
}

func TestMany(t *testing.T) {
	t.Parallel()

	rows := newRows([]string{"word"}, []any{"Fuß"}, []any{"ball"})
	got, err := Many(context.Background(), &fakeQuerier{rows: rows}, scanWord, "select word from lexicon")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"Fuß", "ball"}) {
		t.Fatalf("got %v", got)
	}
	if !rows.closed {
		t.Fatal("rows not closed")
	}

	if _, err := Many(context.Background(), &fakeQuerier{queryErr: errors.New("q")}, scanWord, "x"); err == nil {
		t.Fatal("expected query error")
	}

	rows = newRows([]string{"word"})
	rows.err = errors.New("iter")
	if _, err := Many(context.Background(), &fakeQuerier{rows: rows}, scanWord, "x"); err == nil {
		t.Fatal("expected rows error")
	}
}

func TestOne(t *testing.T) {
	t.Parallel()

	got, err := One(context.Background(), &fakeQuerier{rows: newRows([]string{"w"}, []any{"Mauer"})}, scanWord, "x")
	if err != nil || got != "Mauer" {
		t.Fatalf("got %q, %v", got, err)
	}

	_, err = One(context.Background(), &fakeQuerier{rows: newRows([]string{"w"})}, scanWord, "x")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}

	_, err = One(context.Background(), &fakeQuerier{rows: newRows([]string{"w"}, []any{"a"}, []any{"b"})}, scanWord, "x")
	if err == nil {
		t.Fatal("expected error on extra rows")
	}
}
