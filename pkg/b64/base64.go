// Package b64 renders screened bytes as printable text using the standard, padded base64 alphabet.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedEncoding is returned when input isn't valid standard base64.
var ErrMalformedEncoding = errors.New("malformed encoding")

var encoding = base64.StdEncoding

// Encode encodes data with the standard base64 alphabet, including padding.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// Decode is the inverse of Encode.
// Any character outside the alphabet (line breaks included), bad padding, or a truncated final quantum results in ErrMalformedEncoding.
// The returned bytes are raw, they're not interpreted as text.
func Decode(text string) ([]byte, error) {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return nil, illegalAt(int64(i))
	}
	data, err := encoding.DecodeString(text)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, illegalAt(int64(corrupt))
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return data, nil
}

// NewEncoder returns a stream encoder writing to w.
// Close must be called to flush any partial block.
func NewEncoder(w io.Writer) io.WriteCloser {
	return base64.NewEncoder(encoding, w)
}

// NewDecoder returns a stream decoder reading from r, with the same rules as Decode.
// Decoding failures are reported as ErrMalformedEncoding, errors from r are returned as is.
func NewDecoder(r io.Reader) io.Reader {
	src := &strictReader{r: r}
	return &decoder{
		source: src,
		dec:    base64.NewDecoder(encoding, src),
	}
}

func isAlphabet(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+', b == '/', b == '=':
		return true
	}
	return false
}

// strictReader rejects bytes outside the alphabet before encoding/base64 sees them, since it silently drops line breaks.
// It counts consumed bytes so errors carry the offset from the start of the stream.
type strictReader struct {
	r       io.Reader
	off     int64
	readErr error
	illegal error
}

func (s *strictReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	for i := 0; i < n; i++ {
		if !isAlphabet(p[i]) {
			s.illegal = illegalAt(s.off + int64(i))
			s.off += int64(i)
			return i, s.illegal
		}
	}
	s.off += int64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		s.readErr = err
	}
	return n, err
}

type decoder struct {
	source *strictReader
	dec    io.Reader
}

func (d *decoder) Read(p []byte) (int, error) {
	n, err := d.dec.Read(p)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return n, err
	case d.source.illegal != nil && errors.Is(err, d.source.illegal):
		return n, err
	case d.source.readErr != nil && errors.Is(err, d.source.readErr):
		return n, err
	case errors.Is(err, io.ErrUnexpectedEOF):
		return n, fmt.Errorf("%w: input length is not a multiple of 4", ErrMalformedEncoding)
	}
	// Offsets from encoding/base64 are relative to its internal buffer, not the stream.
	return n, fmt.Errorf("%w: invalid padding", ErrMalformedEncoding)
}

func illegalAt(offset int64) error {
	return fmt.Errorf("%w: illegal data at input byte %d", ErrMalformedEncoding, offset)
}
