package resolve

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// UnresolvedLog records every non-matched resolution outcome for manual
// triage. The file is append-only TSV: context, raw text, status, best
// candidate, score.
type UnresolvedLog struct {
	mu sync.Mutex
	w  io.Writer
	c  io.Closer
}

// OpenUnresolvedLog opens (or creates) the log file for appending and
// writes the header when the file is new.
func OpenUnresolvedLog(path string) (*UnresolvedLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open unresolved log: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat unresolved log: %w", err)
	}
	if info.Size() == 0 {
		if _, err := fmt.Fprintln(f, "context\traw_name\tstatus\tbest_candidate\tscore"); err != nil {
			f.Close()
			return nil, fmt.Errorf("write unresolved log header: %w", err)
		}
	}

	return &UnresolvedLog{w: f, c: f}, nil
}

// NewUnresolvedLog wraps an arbitrary writer, for tests.
func NewUnresolvedLog(w io.Writer) *UnresolvedLog {
	return &UnresolvedLog{w: w}
}

// Record appends one non-matched outcome. Safe for concurrent use.
func (l *UnresolvedLog) Record(context, raw string, res Result) error {
	if l == nil || l.w == nil {
		return nil
	}

	best := ""
	if len(res.Candidates) > 0 {
		best = res.Candidates[0].Name
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := fmt.Fprintf(l.w, "%s\t%s\t%s\t%s\t%d\n",
		sanitize(context), sanitize(raw), res.Status, sanitize(best), res.Score)
	if err != nil {
		return fmt.Errorf("append unresolved entry: %w", err)
	}
	return nil
}

func (l *UnresolvedLog) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
