// Package filesource implements "file mode": a CSV file tailer that
// polls a growing file the way a log shipper does, feeding parsed rows
// to the producer as they appear.
package filesource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fastforwardq/ffq/internal/weather"
)

// Tailer polls a CSV file for new rows. It remembers its own read
// offset and reopens the file whenever the inode changes underneath it
// (rotation, truncate-and-recreate), matching run_file_producer's
// stat-based detection.
type Tailer struct {
	path         string
	pollInterval time.Duration

	file   *os.File
	reader *csv.Reader
	ino    uint64
	size   int64
	mtime  time.Time
}

// NewTailer creates a Tailer for path, polling every pollInterval for
// changes. pollInterval <= 0 defaults to 500ms, matching the original's
// idle-wait delay.
func NewTailer(path string, pollInterval time.Duration) *Tailer {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &Tailer{path: path, pollInterval: pollInterval}
}

// Close releases the tailer's open file handle, if any.
func (t *Tailer) Close() error {
	if t.file == nil {
		return nil
	}
	err := t.file.Close()
	t.file = nil
	t.reader = nil
	return err
}

// Run polls the file until ctx is cancelled, sending every parsed row
// to rows. Malformed rows are skipped, and a missing file is retried on
// the next poll, the way the original producer loop waits and continues
// rather than aborting on a missing file. Any other stat or open error
// ends Run and is returned; otherwise Run returns ctx.Err() once ctx is
// cancelled.
func (t *Tailer) Run(ctx context.Context, rows chan<- weather.Data) error {
	defer t.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		changed, err := t.poll(rows)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		wait := t.pollInterval
		if changed {
			wait = 0
		}
		if wait > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
}

// poll checks the file's stat, reopens it if its inode changed, and
// reads any rows appended since the last poll. It reports whether any
// new data was read, so Run can avoid sleeping right after progress.
func (t *Tailer) poll(rows chan<- weather.Data) (bool, error) {
	info, err := os.Stat(t.path)
	if err != nil {
		return false, err
	}
	ino := inodeOf(info)

	if t.file == nil || ino != t.ino {
		if err := t.reopen(ino); err != nil {
			return false, err
		}
	}

	if info.ModTime().Equal(t.mtime) && info.Size() == t.size {
		return false, nil
	}

	any := false
	for {
		record, err := t.reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		if d, ok := weather.ParseCSVRow(record); ok {
			rows <- d
			any = true
		}
	}

	t.mtime = info.ModTime()
	t.size = info.Size()
	return any, nil
}

func (t *Tailer) reopen(ino uint64) error {
	if t.file != nil {
		_ = t.file.Close()
	}
	f, err := os.Open(t.path)
	if err != nil {
		t.file = nil
		t.reader = nil
		return err
	}
	t.file = f
	t.reader = csv.NewReader(f)
	t.reader.FieldsPerRecord = -1
	t.ino = ino
	return nil
}
