// Package loader reads process descriptions from CSV files of the form
// ID,ArrivalTime,BurstTime[,Priority[,Deadline]].
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// ErrMalformedRow is wrapped by every row level parse failure.
var ErrMalformedRow = errors.New("malformed process row")

// LoadFile opens path and parses it with Load.
func LoadFile(path string) ([]core.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	jobs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

// Load parses CSV rows into jobs. A leading header row is skipped, as are
// blank lines.
func Load(r io.Reader) ([]core.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	jobs := make([]core.Job, 0)
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}

		job, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[1]))
	return err != nil
}

func parseRow(row []string) (core.Job, error) {
	if len(row) < 3 {
		return core.Job{}, fmt.Errorf("%w: want at least 3 fields, got %d", ErrMalformedRow, len(row))
	}

	ints := make([]int, 4)
	names := []string{"arrival time", "burst time", "priority", "deadline"}
	for i := 1; i < len(row) && i <= len(ints); i++ {
		field := strings.TrimSpace(row[i])
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return core.Job{}, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedRow, names[i-1], field)
		}
		ints[i-1] = v
	}

	return core.Job{
		ID:          strings.TrimSpace(row[0]),
		ArrivalTime: ints[0],
		BurstTime:   ints[1],
		Priority:    ints[2],
		Deadline:    ints[3],
	}, nil
}
