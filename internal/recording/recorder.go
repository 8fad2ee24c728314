// Package recording persists simulation results into a SQLite database.
package recording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/fatih/structs"
	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// RunEntry is one row of the runs table.
type RunEntry struct {
	RunID             string
	Policy            string
	Name              string
	AvgTurnaroundTime float64
	AvgWaitingTime    float64
	AvgResponseTime   float64
	Throughput        float64
	CPUUtilization    float64
	TotalTime         int
	IdleTime          int
	ContextSwitches   int
}

// TimelineEntry is one row of the timeline table.
type TimelineEntry struct {
	RunID  string
	Policy string
	Label  string
	Time   int
}

// ProcessEntry is one row of the processes table.
type ProcessEntry struct {
	RunID          string
	Policy         string
	ProcessID      string
	ArrivalTime    int
	BurstTime      int
	Priority       int
	ResponseTime   int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
}

const (
	runsTable      = "runs"
	timelineTable  = "timeline"
	processesTable = "processes"
)

type table struct {
	structType reflect.Type
	entries    []any
}

// Recorder buffers rows and writes them in batches.
type Recorder struct {
	*sql.DB

	dbName     string
	tables     map[string]*table
	batchSize  int
	entryCount int
}

// NewRunID returns a fresh identifier grouping the rows of one invocation.
func NewRunID() string {
	return xid.New().String()
}

// New creates <path>.sqlite3 with the runs, timeline and processes tables.
// An empty path picks a unique name.
func New(path string) (*Recorder, error) {
	if path == "" {
		path = "cpu_scheduler_recording_" + xid.New().String()
	}
	filename := path + ".sqlite3"
	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}

	r := NewWithDB(db)
	r.dbName = filename
	if err := r.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// NewWithDB wraps an open database. Tables must be created with Init.
func NewWithDB(db *sql.DB) *Recorder {
	r := &Recorder{
		DB:        db,
		batchSize: 10000,
		tables:    make(map[string]*table),
	}
	atexit.Register(func() { _ = r.Flush() })
	return r
}

// Init creates the tables on a database given to NewWithDB.
func (r *Recorder) Init() error {
	return r.createTables()
}

// Filename is the database file, empty for NewWithDB recorders.
func (r *Recorder) Filename() string {
	return r.dbName
}

func (r *Recorder) createTables() error {
	samples := map[string]any{
		runsTable:      RunEntry{},
		timelineTable:  TimelineEntry{},
		processesTable: ProcessEntry{},
	}
	for _, name := range []string{runsTable, timelineTable, processesTable} {
		if err := r.createTable(name, samples[name]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) createTable(tableName string, sampleEntry any) error {
	fields := strings.Join(structs.Names(sampleEntry), ", \n\t")
	createTableSQL := `CREATE TABLE ` + tableName + ` (` + "\n\t" + fields + "\n" + `);`
	if _, err := r.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating table %s: %w", tableName, err)
	}
	r.tables[tableName] = &table{structType: reflect.TypeOf(sampleEntry)}
	return nil
}

// Record buffers every row describing result under runID.
func (r *Recorder) Record(runID, key string, result core.Result) error {
	if err := r.insert(runsTable, RunEntry{
		RunID:             runID,
		Policy:            key,
		Name:              result.Policy,
		AvgTurnaroundTime: result.AvgTurnaroundTime,
		AvgWaitingTime:    result.AvgWaitingTime,
		AvgResponseTime:   result.AvgResponseTime,
		Throughput:        result.Throughput,
		CPUUtilization:    result.CPUUtilization,
		TotalTime:         result.TotalTime,
		IdleTime:          result.IdleTime,
		ContextSwitches:   result.ContextSwitches,
	}); err != nil {
		return err
	}

	for _, e := range result.Timeline {
		if err := r.insert(timelineTable, TimelineEntry{RunID: runID, Policy: key, Label: e.Label, Time: e.Time}); err != nil {
			return err
		}
	}

	for _, p := range result.Processes {
		if err := r.insert(processesTable, ProcessEntry{
			RunID:          runID,
			Policy:         key,
			ProcessID:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			ResponseTime:   p.ResponseTime,
			CompletionTime: p.CompletionTime,
			TurnaroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) insert(tableName string, entry any) error {
	t, exists := r.tables[tableName]
	if !exists {
		return fmt.Errorf("table %s does not exist", tableName)
	}
	if reflect.TypeOf(entry) != t.structType {
		return errors.New("entry does not match table " + tableName)
	}

	t.entries = append(t.entries, entry)
	r.entryCount++
	if r.entryCount >= r.batchSize {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered rows in one transaction. The buffers are kept
// when the transaction fails.
func (r *Recorder) Flush() error {
	if r.entryCount == 0 {
		return nil
	}

	tx, err := r.Begin()
	if err != nil {
		return err
	}

	for tableName, t := range r.tables {
		if len(t.entries) == 0 {
			continue
		}
		if err := insertAll(tx, tableName, t.entries); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	for _, t := range r.tables {
		t.entries = nil
	}
	r.entryCount = 0
	return nil
}

// Close flushes pending rows and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		return err
	}
	return r.DB.Close()
}

func insertAll(tx *sql.Tx, tableName string, entries []any) error {
	placeholders := structs.Names(entries[0])
	for i := range placeholders {
		placeholders[i] = "?"
	}
	sqlStr := "INSERT INTO " + tableName + " VALUES (" + strings.Join(placeholders, ", ") + ")"

	stmt, err := tx.Prepare(sqlStr)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range entries {
		values := []any{}
		v := reflect.ValueOf(entry)
		for i := 0; i < v.NumField(); i++ {
			values = append(values, v.Field(i).Interface())
		}
		if _, err := stmt.Exec(values...); err != nil {
			return fmt.Errorf("inserting into %s: %w", tableName, err)
		}
	}
	return nil
}
