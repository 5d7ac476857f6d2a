package utf8codec

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

const (
	defaultReaderBufferSize = 4096
	minReaderBufferSize     = maxSequenceLen

	maxConsecutiveEmptyReads = 100
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	Logger     *zap.Logger
	BufferSize int
}

// DefaultReaderOptions returns default Reader configuration.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{BufferSize: defaultReaderBufferSize}
}

// WriterOptions configures a Writer.
type WriterOptions struct {
	Logger *zap.Logger
}

// DefaultWriterOptions returns default Writer configuration.
func DefaultWriterOptions() WriterOptions {
	return WriterOptions{}
}

// Reader decodes codepoints from an io.Reader. Character sequences split
// across underlying reads are reassembled before decoding.
//
// Decode errors are sticky: once a malformed sequence is found every later
// call returns the same error. Errors from the underlying reader other than
// io.EOF are returned once and then cleared, as bufio does, so a later call
// retries the read. Not safe for concurrent use.
type Reader struct {
	rd     io.Reader
	log    *zap.Logger
	buf    []byte
	r, w   int   // buf[r:w] is buffered, undecoded input
	offset int   // bytes decoded so far
	ioErr  error // error from rd, io.EOF included
	err    error // sticky decode error
}

// NewReader returns a Reader decoding UTF-8 from rd.
func NewReader(rd io.Reader, opts ReaderOptions) *Reader {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultReaderBufferSize
	}
	if size < minReaderBufferSize {
		size = minReaderBufferSize
	}
	return &Reader{
		rd:  rd,
		log: loggerOr(opts.Logger),
		buf: make([]byte, size),
	}
}

// Offset returns the number of input bytes decoded so far.
func (rd *Reader) Offset() int {
	return rd.offset
}

// ReadCodepoint decodes the next codepoint and returns it with its encoded
// size. At the end of input it returns io.EOF; input ending inside a
// character sequence is a KindInvalidSequence error.
func (rd *Reader) ReadCodepoint() (cp uint32, size int, err error) {
	if rd.err != nil {
		return 0, 0, rd.err
	}
	for {
		if rd.r < rd.w {
			n, ok := ClassifyLeadingByte(rd.buf[rd.r])
			// Wait for more input only while what we have can still
			// become a valid sequence.
			if !ok || rd.w-rd.r >= n || !continuationsOnly(rd.buf[rd.r+1:rd.w]) {
				c, size, e := decode(rd.buf[rd.r:rd.w])
				if e != nil {
					return 0, 0, rd.fail(e, 0)
				}
				rd.r += size
				rd.offset += size
				return c, size, nil
			}
		}
		if rd.ioErr != nil {
			return 0, 0, rd.finish()
		}
		rd.fill()
	}
}

// ReadCodepoints decodes up to len(out) codepoints into out and returns how
// many were decoded. Like io.Reader, it returns n > 0 with a nil error when
// more input may follow, and 0 with io.EOF at the end of input.
func (rd *Reader) ReadCodepoints(out []uint32) (int, error) {
	if out == nil {
		return 0, nullPointer(OpRead, "output buffer")
	}
	if rd.err != nil {
		return 0, rd.err
	}
	if len(out) == 0 {
		return 0, nil
	}
	for {
		k := completePrefix(rd.buf[rd.r:rd.w])
		if k > 0 {
			count, err := DecodeStream(rd.buf[rd.r:rd.r+k], out)
			if err == nil {
				rd.r += k
				rd.offset += k
				return count, nil
			}
			e := err.(*Error)
			if e.Kind == KindBufferTooSmall {
				rd.r += e.Offset
				rd.offset += e.Offset
				return count, nil
			}
			// Keep the codepoints before the bad sequence; the error is
			// returned by the next call.
			rd.r += e.Offset
			rd.offset += e.Offset
			err = rd.fail(e, -e.Offset)
			if count > 0 {
				return count, nil
			}
			return 0, err
		}
		if rd.ioErr != nil {
			return 0, rd.finish()
		}
		rd.fill()
	}
}

// finish reports the pending underlying error. A non-EOF error is returned
// once and cleared, keeping any buffered partial sequence. At io.EOF it is a
// clean EOF when no bytes remain, a truncated sequence otherwise.
func (rd *Reader) finish() error {
	if rd.ioErr != io.EOF {
		err := rd.ioErr
		rd.ioErr = nil
		return err
	}
	if rd.r == rd.w {
		return io.EOF
	}
	e := invalidSequence(OpRead, "truncated sequence at end of input", rd.buf[rd.r:rd.w])
	return rd.fail(e, 0)
}

// fail records e as the sticky error, relocated to the stream offset.
// shift corrects for an Offset already relative to rd.r.
func (rd *Reader) fail(e *Error, shift int) error {
	e = e.at(OpRead, rd.offset+shift)
	rd.log.Debug("utf8codec: invalid input",
		zap.Int("offset", e.Offset),
		zap.String("detail", e.Detail),
	)
	rd.err = e
	return e
}

// fill compacts the buffer and reads a new chunk.
func (rd *Reader) fill() {
	if rd.r > 0 {
		copy(rd.buf, rd.buf[rd.r:rd.w])
		rd.w -= rd.r
		rd.r = 0
	}
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		n, err := rd.rd.Read(rd.buf[rd.w:])
		if n < 0 {
			panic(errors.New("utf8codec: reader returned negative count from Read"))
		}
		rd.w += n
		if err != nil {
			rd.ioErr = err
			return
		}
		if n > 0 {
			return
		}
	}
	rd.ioErr = io.ErrNoProgress
}

// completePrefix returns the length of the longest prefix of b that does
// not end inside a character sequence. Malformed bytes count as complete
// so the decoder gets to report them.
func completePrefix(b []byte) int {
	// A sequence is at most 4 bytes, so only the last 3 can start an
	// incomplete one.
	for back := 1; back < maxSequenceLen && back <= len(b); back++ {
		i := len(b) - back
		if IsContinuationByte(b[i]) {
			continue
		}
		n, ok := ClassifyLeadingByte(b[i])
		if ok && n > back {
			return i
		}
		return len(b)
	}
	return len(b)
}

// Writer encodes codepoints to an io.Writer. Not safe for concurrent use.
type Writer struct {
	wr      io.Writer
	log     *zap.Logger
	written int
}

// NewWriter returns a Writer encoding UTF-8 to wr.
func NewWriter(wr io.Writer, opts WriterOptions) *Writer {
	return &Writer{
		wr:  wr,
		log: loggerOr(opts.Logger),
	}
}

// Written returns the number of bytes written to the underlying writer.
func (w *Writer) Written() int {
	return w.written
}

// WriteCodepoint encodes cp and writes it, returning the bytes written.
func (w *Writer) WriteCodepoint(cp uint32) (int, error) {
	var buf [maxSequenceLen]byte
	n, e := encode(cp, buf[:])
	if e != nil {
		return 0, w.fail(e.at(OpWrite, w.written))
	}
	return w.write(buf[:n])
}

// WriteCodepoints encodes cps in order and writes them, returning the bytes
// written. On an invalid codepoint everything before it has been written
// and the error's Index names it.
func (w *Writer) WriteCodepoints(cps []uint32) (int, error) {
	s := getScratch()
	defer putScratch(s)

	total := 0
	for i := 0; i < len(cps); {
		n, err := EncodeStream(cps[i:], s.buf[:])
		s.n = n
		if err == nil {
			m, werr := w.write(s.buf[:s.n])
			return total + m, werr
		}
		e := err.(*Error)
		if s.n > 0 {
			m, werr := w.write(s.buf[:s.n])
			total += m
			if werr != nil {
				return total, werr
			}
		}
		if e.Kind != KindBufferTooSmall {
			e = e.at(OpWrite, w.written-e.Offset)
			e.Index += i
			return total, w.fail(e)
		}
		i += e.Index
	}
	return total, nil
}

// Flush flushes the underlying writer if it buffers.
func (w *Writer) Flush() error {
	if f, ok := w.wr.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (w *Writer) write(p []byte) (int, error) {
	n, err := w.wr.Write(p)
	w.written += n
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (w *Writer) fail(e *Error) error {
	w.log.Debug("utf8codec: invalid codepoint",
		zap.Int("offset", e.Offset),
		zap.Int("index", e.Index),
		zap.Any("value", e.Value),
	)
	return e
}
