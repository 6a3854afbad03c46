package logio

import "bytes"

// Writer adapts a printf-style function, like testing.T.Logf, into an
// io.Writer: each complete line written is logged by one Logf call, and Close
// logs whatever partial line remains.
type Writer struct {
	Logf func(string, ...interface{})

	buf bytes.Buffer
}

// Write never fails.
func (lw *Writer) Write(p []byte) (int, error) {
	lw.buf.Write(p)
	for {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		lw.Logf("%s", lw.buf.Next(i + 1)[:i])
	}
	return len(p), nil
}

// Close logs any final unterminated line.
func (lw *Writer) Close() error {
	if lw.buf.Len() > 0 {
		lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
	}
	return nil
}
