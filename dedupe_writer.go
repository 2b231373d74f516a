package urlcomplete

import (
	"bytes"
	"io"
	"sync"

	"github.com/projectdiscovery/utils/dedupe"
)

// DedupingWriter wraps an io.Writer and drops repeated lines.
// Lines are written once Close is called and their order is not kept.
type DedupingWriter struct {
	writer    io.Writer
	inputCh   chan string
	blacklist map[string]bool
	wg        sync.WaitGroup
	count     int
	countMu   sync.Mutex
	closed    bool
	buffer    []byte
	err       error
}

// NewDedupingWriter creates a new DedupingWriter with optional blacklist/seed
// The seed parameter allows pre-populating items to skip
func NewDedupingWriter(w io.Writer, seed ...string) *DedupingWriter {
	blacklist := make(map[string]bool, len(seed))
	for _, item := range seed {
		blacklist[item] = true
	}

	inputCh := make(chan string, 100)
	dw := &DedupingWriter{
		writer:    w,
		inputCh:   inputCh,
		blacklist: blacklist,
	}

	dw.wg.Add(1)
	go dw.processDeduped(inputCh)

	return dw
}

// processDeduped drains deduped lines into underlying writer
func (dw *DedupingWriter) processDeduped(inputCh chan string) {
	defer dw.wg.Done()

	d := dedupe.NewDedupe(inputCh, 1024*1024)
	d.Drain()

	for value := range d.GetResults() {
		if value == "" || dw.blacklist[value] {
			continue
		}
		if dw.err != nil {
			// keep draining so dedupe backend can cleanup
			continue
		}
		if _, err := dw.writer.Write([]byte(value + "\n")); err != nil {
			dw.err = err
			continue
		}
		dw.countMu.Lock()
		dw.count++
		dw.countMu.Unlock()
	}
}

// Write implements io.Writer interface
func (dw *DedupingWriter) Write(p []byte) (int, error) {
	if dw.closed {
		return 0, io.ErrClosedPipe
	}

	dw.buffer = append(dw.buffer, p...)
	for {
		idx := bytes.IndexByte(dw.buffer, '\n')
		if idx == -1 {
			break
		}
		dw.inputCh <- string(dw.buffer[:idx])
		dw.buffer = dw.buffer[idx+1:]
	}
	return len(p), nil
}

// Close flushes remaining data and waits for all unique lines to be written.
// It returns the first error returned by the underlying writer.
func (dw *DedupingWriter) Close() error {
	if dw.closed {
		return nil
	}
	dw.closed = true

	if len(dw.buffer) > 0 {
		dw.inputCh <- string(dw.buffer)
		dw.buffer = nil
	}
	close(dw.inputCh)
	dw.wg.Wait()
	return dw.err
}

// Count returns the number of unique items written
func (dw *DedupingWriter) Count() int {
	dw.countMu.Lock()
	defer dw.countMu.Unlock()
	return dw.count
}
