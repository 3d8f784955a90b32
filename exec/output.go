package exec

import (
	"bytes"
	"io"
	"sync"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent writes os/exec
// makes from its stdout and stderr copying goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// multiWriter writes to every writer in order, failing on the first short write.
type multiWriter struct {
	mu      sync.Mutex
	writers []io.Writer
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

func (mw *multiWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err := w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// outputCapture records one stream, optionally teeing it to a passthrough writer.
type outputCapture struct {
	buffer      *lockedBuffer
	passthrough io.Writer
}

func newOutputCapture(passthrough io.Writer) *outputCapture {
	return &outputCapture{
		buffer:      &lockedBuffer{},
		passthrough: passthrough,
	}
}

// Writer returns the writer to attach to the process stream.
func (oc *outputCapture) Writer() io.Writer {
	if oc.passthrough != nil {
		return newMultiWriter(oc.buffer, oc.passthrough)
	}
	return oc.buffer
}

func (oc *outputCapture) String() string {
	return oc.buffer.String()
}

// newCombinedWriter returns the buffer that interleaves stdout and stderr.
func newCombinedWriter() *lockedBuffer {
	return &lockedBuffer{}
}
