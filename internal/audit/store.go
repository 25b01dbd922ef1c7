package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Sink appends audit records to the JSONL output file. Each record is
// serialized to a JSON string and wrapped in the streaming envelope
// (audit_result, diff=1, time in unix milliseconds). Appends are
// serialized under a mutex so concurrent audits never interleave lines.
type Sink struct {
	mu   sync.Mutex
	path string
}

// NewSink returns a sink writing to path. The file is created on first
// append.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Path returns the JSONL file location.
func (s *Sink) Path() string { return s.path }

// Append writes one record as a JSONL row.
func (s *Sink) Append(rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}
	row, err := json.Marshal(envelope{
		AuditResult: string(payload),
		Diff:        1,
		Time:        time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("marshal audit envelope: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(row, '\n')); err != nil {
		return fmt.Errorf("append audit row: %w", err)
	}
	return nil
}

// Store reads audit records back from a JSONL file written by Sink (or
// by any writer using the same envelope).
type Store struct {
	path string
}

// NewStore returns a store reading from path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns all inserted audit records, latest first, plus whether
// the pipeline output file exists at all.
//
// Rows are filtered rather than failed on:
//   - blank lines are skipped
//   - malformed JSON rows are skipped rather than failing the load
//   - rows with diff != 1 are retractions and are skipped; without this
//     filter retracted rows would reappear as phantom audits
//
// The audit_result payload is itself a JSON string and is double-parsed.
func (s *Store) Load() ([]Record, bool, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var row struct {
			AuditResult json.RawMessage `json:"audit_result"`
			Diff        *int            `json:"diff"`
		}
		if err := json.Unmarshal(line, &row); err != nil {
			continue
		}
		if row.Diff != nil && *row.Diff != 1 {
			continue
		}

		payload := row.AuditResult
		if len(payload) == 0 {
			// Rows without the envelope carry the record directly.
			payload = json.RawMessage(line)
		} else if payload[0] == '"' {
			var inner string
			if err := json.Unmarshal(payload, &inner); err != nil {
				continue
			}
			payload = json.RawMessage(inner)
		}

		var rec Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, true, fmt.Errorf("scan audit file: %w", err)
	}

	// Latest first for the dashboard.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, true, nil
}
