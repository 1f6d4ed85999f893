package xor

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and move back to the first byte of the key.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and move back to the first byte of the key.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.screenAll(out[:n], out[:n])
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a Reader that XORs every byte read from r with the repeating key.
func NewReader(r io.Reader, key []byte) (Reader, error) {
	scr, err := newXorScreen(key)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
	buf    []byte
}

// NewWriter constructs a Writer that XORs every byte with the repeating key before passing it to target.
func NewWriter(target io.Writer, key []byte) (Writer, error) {
	scr, err := newXorScreen(key)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

// Write screens in without modifying it.
// The key position only advances for bytes the target actually accepted.
func (w *writer) Write(in []byte) (n int, err error) {
	if cap(w.buf) < len(in) {
		w.buf = make([]byte, len(in))
	}
	buf := w.buf[:len(in)]
	start := w.scr.cur
	w.scr.screenAll(buf, in)
	n, err = w.target.Write(buf)
	if n < len(in) {
		w.scr.cur = (start + n) % len(w.scr.key)
	}
	return n, err
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
