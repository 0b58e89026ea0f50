// Package record stores bus-transaction traces in a SQLite database for
// offline debugging of a failing board. Test results are deliberately not
// recorded; only the electrical traffic is.
package record

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	// SQLite driver for the trace database.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// DataRecorder is a backend that can record and store rows of typed data.
type DataRecorder interface {
	// CreateTable creates a new table shaped after the sample entry.
	CreateTable(tableName string, sampleEntry any)

	// InsertData buffers one row for a table that already exists.
	InsertData(tableName string, entry any)

	// ListTables returns the names of all tables.
	ListTables() []string

	// Flush writes all buffered rows to the database.
	Flush()
}

// NewRecorder creates a SQLite-backed DataRecorder writing to the given
// path, or to a generated filename when the path is empty. Buffered rows
// are flushed on exit.
func NewRecorder(path string) DataRecorder {
	w := &sqliteWriter{
		dbName:    path,
		batchSize: 100000,
		tables:    make(map[string]*table),
	}

	w.init()

	atexit.Register(func() { w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	entries    []any
}

type sqliteWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName    string
	tables    map[string]*table
	batchSize int
	entryCount int
}

func (t *sqliteWriter) init() {
	if t.dbName == "" {
		t.dbName = "ictest_trace_" + xid.New().String()
	}

	filename := t.dbName + ".sqlite3"

	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	t.DB = db
}

func (t *sqliteWriter) isAllowedType(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

func (t *sqliteWriter) checkStructFields(entry any) error {
	types := reflect.TypeOf(entry)

	for i := 0; i < types.NumField(); i++ {
		field := types.Field(i)

		if !t.isAllowedType(field.Type.Kind()) {
			return errors.New("entry fields must be scalar types")
		}
	}

	return nil
}

func (t *sqliteWriter) fieldNames(entry any) []string {
	types := reflect.TypeOf(entry)

	names := make([]string, 0, types.NumField())
	for i := 0; i < types.NumField(); i++ {
		names = append(names, types.Field(i).Name)
	}

	return names
}

// CreateTable creates a table with one column per struct field.
func (t *sqliteWriter) CreateTable(tableName string, sampleEntry any) {
	if err := t.checkStructFields(sampleEntry); err != nil {
		panic(err)
	}

	fields := strings.Join(t.fieldNames(sampleEntry), ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	t.mustExecute(createTableSQL)

	t.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		entries:    []any{},
	}
}

// InsertData buffers one row, flushing when the batch is full.
func (t *sqliteWriter) InsertData(tableName string, entry any) {
	table, exists := t.tables[tableName]
	if !exists {
		panic(fmt.Sprintf("table %s does not exist", tableName))
	}

	table.entries = append(table.entries, entry)

	t.entryCount++
	if t.entryCount >= t.batchSize {
		t.Flush()
	}
}

// ListTables returns the names of all tables.
func (t *sqliteWriter) ListTables() []string {
	tables := make([]string, 0, len(t.tables))
	for name := range t.tables {
		tables = append(tables, name)
	}

	return tables
}

// Flush writes all buffered rows in one transaction.
func (t *sqliteWriter) Flush() {
	if t.entryCount == 0 {
		return
	}

	t.mustExecute("BEGIN TRANSACTION")
	defer t.mustExecute("COMMIT TRANSACTION")

	for tableName, table := range t.tables {
		if len(table.entries) == 0 {
			continue
		}

		t.prepareStatement(tableName, table.entries[0])

		for _, entry := range table.entries {
			v := []any{}

			value := reflect.ValueOf(entry)
			for i := 0; i < value.NumField(); i++ {
				v = append(v, value.Field(i).Interface())
			}

			if _, err := t.statement.Exec(v...); err != nil {
				panic(err)
			}
		}

		table.entries = nil

		t.statement.Close()
		t.statement = nil
	}

	t.entryCount = 0
}

func (t *sqliteWriter) prepareStatement(tableName string, sampleEntry any) {
	names := t.fieldNames(sampleEntry)

	placeholders := strings.TrimSuffix(
		strings.Repeat("?, ", len(names)), ", ")
	insertSQL := `INSERT INTO ` + tableName +
		` (` + strings.Join(names, ", ") + `) VALUES (` + placeholders + `)`

	statement, err := t.Prepare(insertSQL)
	if err != nil {
		panic(err)
	}

	t.statement = statement
}

func (t *sqliteWriter) mustExecute(query string) sql.Result {
	res, err := t.Exec(query)
	if err != nil {
		panic(err.Error() + " " + query)
	}
	return res
}
