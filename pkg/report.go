package findclone

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
)

// Reporter receives confirmed duplicate pairs and recoverable per-file problems
type Reporter interface {
	Duplicate(pair ConfirmedPair) error
	Warning(path string, err error) error
}

// NewReporter returns a reporter writing the given output format to w
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch strings.ToLower(format) {
	case "", FormatHuman:
		return &humanReporter{w: w}, nil
	case FormatJSON:
		return &jsonReporter{w: w}, nil
	case FormatFdupes:
		return &fdupesReporter{humanReporter: humanReporter{w: w}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

var warnColor = color.New(color.FgYellow)

// flusher is implemented by reporters that hold output back until the run completes
type flusher interface {
	Flush() error
}

// humanReporter prints "<a> and <b> are the same" per pair
type humanReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *humanReporter) Duplicate(pair ConfirmedPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := fmt.Fprintf(r.w, "%s and %s are the same\n", pair.A.Path, pair.B.Path)
	return err
}

func (r *humanReporter) Warning(path string, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := warnColor.Fprintf(r.w, "Error in %s: %v\n", path, cause)
	return err
}

// jsonReporter writes one JSON object per line
type jsonReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *jsonReporter) Duplicate(pair ConfirmedPair) error {
	return r.write(duplicateRecord{pair})
}

func (r *jsonReporter) Warning(path string, cause error) error {
	return r.write(warningRecord{Path: path, Err: cause.Error()})
}

func (r *jsonReporter) write(record easyjson.Marshaler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := easyjson.MarshalToWriter(record, r.w); err != nil {
		return fmt.Errorf("failed to write json record: %w", err)
	}
	_, err := io.WriteString(r.w, "\n")
	return err
}

type duplicateRecord struct {
	pair ConfirmedPair
}

// MarshalEasyJSON encodes {"type":"duplicate","a":..,"b":..,"size":..,"digest":..}
func (d duplicateRecord) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"type":"duplicate","a":`)
	w.String(d.pair.A.Path)
	w.RawString(`,"b":`)
	w.String(d.pair.B.Path)
	w.RawString(`,"size":`)
	w.Uint64(d.pair.A.Size)
	w.RawString(`,"digest":`)
	w.String(d.pair.Digest)
	w.RawByte('}')
}

type warningRecord struct {
	Path string
	Err  string
}

// MarshalEasyJSON encodes {"type":"warning","path":..,"error":..}
func (wr warningRecord) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"type":"warning","path":`)
	w.String(wr.Path)
	w.RawString(`,"error":`)
	w.String(wr.Err)
	w.RawByte('}')
}

// fdupesReporter buffers pairs and prints each set of identical files on consecutive
// lines, sets separated by a blank line
type fdupesReporter struct {
	humanReporter
	pairs []ConfirmedPair
}

func (r *fdupesReporter) Duplicate(pair ConfirmedPair) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = append(r.pairs, pair)
	return nil
}

func (r *fdupesReporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, group := range GroupPairs(r.pairs) {
		if i > 0 {
			if _, err := io.WriteString(r.w, "\n"); err != nil {
				return err
			}
		}
		for _, file := range group.Files {
			if _, err := fmt.Fprintln(r.w, file); err != nil {
				return err
			}
		}
	}
	r.pairs = nil
	return nil
}
