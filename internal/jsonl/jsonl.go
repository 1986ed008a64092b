// Package jsonl reads input records from and writes results to
// line-delimited JSON streams.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// MaxLineSize is the longest input line accepted, in bytes.
const MaxLineSize = 1 << 20

// Decoding errors.
var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotObject   = errors.New("JSON value must be an object")
	ErrMissingText = errors.New("JSON object must have a 'text' field")
	ErrLineTooLong = fmt.Errorf("line exceeds %d bytes", MaxLineSize)
)

// LineError ties a decoding error to its 1-based input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Record is one input entry. ID is nil when the line has no id or a null
// id.
type Record struct {
	ID   *string
	Text string
}

// Decode parses one line. A missing text field decodes to an empty text;
// a non-string id or text is taken as its raw JSON form.
func Decode(line []byte) (Record, error) {
	root, err := parseObject(line)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if id := root.Get("id"); id.Exists() && id.Type != gjson.Null {
		s := id.String()
		rec.ID = &s
	}
	if t := root.Get("text"); t.Exists() && t.Type != gjson.Null {
		rec.Text = t.String()
	}

	return rec, nil
}

func parseObject(line []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(line) {
		return gjson.Result{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(line)
	if !root.IsObject() {
		return gjson.Result{}, ErrNotObject
	}
	return root, nil
}

// Reader iterates over the non-blank lines of a stream.
type Reader struct {
	br   *bufio.Reader
	buf  []byte
	line int
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Next returns the next record and its line number. A malformed or
// oversize line yields a *LineError and reading may continue. At the end
// of input Next returns io.EOF.
func (r *Reader) Next() (Record, int, error) {
	for {
		line, err := r.readLine()
		if errors.Is(err, io.EOF) {
			return Record{}, r.line, io.EOF
		}
		if errors.Is(err, ErrLineTooLong) {
			r.line++
			return Record{}, r.line, &LineError{Line: r.line, Err: err}
		}
		if err != nil {
			return Record{}, r.line + 1, fmt.Errorf("failed to read input after line %d: %w", r.line, err)
		}

		r.line++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		rec, err := Decode(line)
		if err != nil {
			return Record{}, r.line, &LineError{Line: r.line, Err: err}
		}
		return rec, r.line, nil
	}
}

// readLine returns the next line without its newline. The slice is reused
// by the following call. A line longer than MaxLineSize is consumed in full
// and reported as ErrLineTooLong without being buffered.
func (r *Reader) readLine() ([]byte, error) {
	r.buf = r.buf[:0]
	tooLong := false

	for {
		chunk, err := r.br.ReadSlice('\n')
		if !tooLong {
			if len(r.buf)+len(chunk) > MaxLineSize+1 {
				tooLong = true
				r.buf = r.buf[:0]
			} else {
				r.buf = append(r.buf, chunk...)
			}
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if !tooLong && len(r.buf) == 0 {
				return nil, io.EOF
			}
		} else if err != nil {
			return nil, err
		}

		line := bytes.TrimSuffix(r.buf, []byte("\n"))
		if tooLong || len(line) > MaxLineSize {
			return nil, ErrLineTooLong
		}
		return line, nil
	}
}

// Validate checks the first sampleSize non-blank lines: each must be a
// JSON object with a text field. A sampleSize of zero or less checks every
// line.
func Validate(r io.Reader, sampleSize int) error {
	reader := NewReader(r)

	checked := 0
	for {
		line, err := reader.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, ErrLineTooLong) {
			return &LineError{Line: reader.line + 1, Err: err}
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		reader.line++

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if sampleSize > 0 && checked >= sampleSize {
			return nil
		}
		checked++

		root, err := parseObject(line)
		if err != nil {
			return &LineError{Line: reader.line, Err: err}
		}
		if !root.Get("text").Exists() {
			return &LineError{Line: reader.line, Err: ErrMissingText}
		}
	}
}

// Writer encodes one JSON value per line. Non-ASCII text is written as-is
// and HTML characters are not escaped.
type Writer struct {
	buf *bufio.Writer
	enc *json.Encoder
}

// NewWriter creates a writer over w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{buf: buf, enc: enc}
}

// Write encodes v followed by a newline.
func (w *Writer) Write(v any) error {
	if err := w.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}

// Flush writes any buffered output.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
