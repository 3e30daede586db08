// Package ndjson reads and writes newline-delimited JSON streams.
package ndjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// maxLine bounds a single record. Batch request bodies can be large.
const maxLine = 8 << 20

// Reader decodes one JSON value per line. Blank lines are skipped.
type Reader[T any] struct {
	r    *bufio.Reader
	line int
}

func NewReader[T any](r io.Reader) *Reader[T] {
	return &Reader[T]{r: bufio.NewReader(r)}
}

// Next returns the next record and its 1-based line number. It returns
// io.EOF once the stream is exhausted.
func (r *Reader[T]) Next() (T, int, error) {
	var zero T
	for {
		raw, err := r.readLine()
		if len(raw) == 0 && errors.Is(err, io.EOF) {
			return zero, r.line, io.EOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return zero, r.line, err
		}
		r.line++
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			if errors.Is(err, io.EOF) {
				return zero, r.line, io.EOF
			}
			continue
		}
		var t T
		if jerr := json.Unmarshal(raw, &t); jerr != nil {
			return zero, r.line, fmt.Errorf("line %d: %w", r.line, jerr)
		}
		return t, r.line, nil
	}
}

func (r *Reader[T]) readLine() ([]byte, error) {
	var buf []byte
	for {
		chunk, err := r.r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if len(buf) > maxLine {
			return nil, fmt.Errorf("line %d: record exceeds %d bytes", r.line+1, maxLine)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return buf, err
	}
}

// ReadAll decodes every record in r.
func ReadAll[T any](r io.Reader) ([]T, error) {
	nr := NewReader[T](r)
	var items []T
	for {
		t, _, err := nr.Next()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, t)
	}
}

// Writer encodes one JSON value per line. Each record is written with a
// single Write call so concurrent writers never interleave.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(v any) error {
	if w == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b = append(b, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return nil
	}
	_, err = w.w.Write(b)
	return err
}
