// Package savelog implements the designer tool's append-only save stream:
// every saved level is appended to the output file as a `;Number: N` and
// `;Date: ...` comment pair followed by its `.mzm` body. Writes happen on
// a single background goroutine fed by a bounded queue, so callers never
// block on file I/O.
package savelog

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"mzm/internal/level"
	"mzm/internal/mzmtext"
)

// Entry is one level to append, together with its save-stream sequence
// number and the moment it was saved.
type Entry struct {
	Number int
	Saved  time.Time
	Level  *level.LevelData
}

// Log handles threaded, append-only writing to the output file.
type Log struct {
	file  *os.File
	queue chan Entry
	done  chan struct{}
}

// Open opens (creating if necessary, never truncating) filename for
// append, and starts the background writer goroutine.
func Open(filename string) (*Log, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l := &Log{
		file:  file,
		queue: make(chan Entry, 20), // buffer up to 20 saves
		done:  make(chan struct{}),
	}
	go l.writer()
	return l, nil
}

// Save queues lvl for append under sequence number, timestamped now.
// Save never blocks: if the queue is full the entry is dropped and a
// warning printed.
func (l *Log) Save(number int, lvl *level.LevelData, now time.Time) {
	entry := Entry{Number: number, Saved: now, Level: lvl}
	select {
	case l.queue <- entry:
	default:
		fmt.Println("Warning: save queue full, dropping level")
	}
}

// Close drains the queue, closes the file, and waits for the writer
// goroutine to finish.
func (l *Log) Close() error {
	close(l.queue)
	<-l.done
	return l.file.Close()
}

func (l *Log) writer() {
	w := bufio.NewWriter(l.file)
	for entry := range l.queue {
		fmt.Fprintf(w, ";Number: %d\n", entry.Number)
		fmt.Fprintf(w, ";Date: %s\n", entry.Saved.Format("2006-01-02 15:04:05"))
		if err := mzmtext.WriteLevel(w, entry.Level); err != nil {
			fmt.Println("Warning: failed to write saved level:", err)
			continue
		}
		w.Flush()
	}
	close(l.done)
}
