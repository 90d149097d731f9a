package recordset

// A minimal database/sql driver serving a fixed result, so FromRows can
// be exercised without a live database.

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
)

type stubColumn struct {
	name   string
	dbType string
}

var stub struct {
	sync.Mutex
	columns []stubColumn
	rows    [][]driver.Value
}

// setStubResult installs the result the stub driver serves for every
// query.
func setStubResult(columns []stubColumn, rows [][]driver.Value) {
	stub.Lock()
	defer stub.Unlock()
	stub.columns = columns
	stub.rows = rows
}

var registerOnce sync.Once

func openStubDB() *sql.DB {
	registerOnce.Do(func() {
		sql.Register("colkitstub", stubDriver{})
	})
	db, err := sql.Open("colkitstub", "")
	if err != nil {
		panic(err)
	}
	return db
}

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return stubStmt{}, nil }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return nil, fmt.Errorf("transactions not supported") }

type stubStmt struct{}

func (stubStmt) Close() error  { return nil }
func (stubStmt) NumInput() int { return 0 }

func (stubStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, fmt.Errorf("exec not supported")
}

func (stubStmt) Query([]driver.Value) (driver.Rows, error) {
	stub.Lock()
	defer stub.Unlock()

	columns := make([]stubColumn, len(stub.columns))
	copy(columns, stub.columns)
	rows := make([][]driver.Value, len(stub.rows))
	copy(rows, stub.rows)

	return &stubRows{columns: columns, rows: rows}, nil
}

type stubRows struct {
	columns []stubColumn
	rows    [][]driver.Value
	index   int
}

func (r *stubRows) Columns() []string {
	names := make([]string, len(r.columns))
	for i, c := range r.columns {
		names[i] = c.name
	}
	return names
}

func (r *stubRows) ColumnTypeDatabaseTypeName(index int) string {
	return r.columns[index].dbType
}

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.index >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.index])
	r.index++
	return nil
}
