/*
PURPOSE:
  Appends run summaries to a JSON Lines file (NDJSON).

REQUIREMENTS:
  User-specified:
  - Optional --summary-json export for machine parsing.

  Implementation-discovered:
  - JSON Lines is append-friendly across invocations.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Summary

ERROR HANDLING:
  - Returns error on file creation or write failure.

USAGE:
  w, err := output.NewJSONWriter("summaries.jsonl")
  w.Write(summary)
  w.Close()

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - JSON field names come from model.Summary tags; rename there only.
*/

package output

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/daryltucker/runplot/internal/model"
)

// JSONWriter appends summaries to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter opens path for appending.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single summary as a JSON line.
func (jw *JSONWriter) Write(s model.Summary) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(s)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
