package xor

import (
	"errors"
)

// ErrInvalidKey is returned when a key can't be used for screening.
var ErrInvalidKey = errors.New("invalid key")

type xorScreen struct {
	key []byte
	cur int
}

func newXorScreen(key []byte) (*xorScreen, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	return &xorScreen{key: key}, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}

func (s *xorScreen) screenAll(dst, src []byte) {
	for i := range src {
		dst[i] = s.screen(src[i])
	}
}

func (s *xorScreen) reset() {
	s.cur = 0
}

// Screen returns a new slice containing data XOR'd with the repeating key.
// Applying Screen twice with the same key returns the original data.
func Screen(key, data []byte) ([]byte, error) {
	scr, err := newXorScreen(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	scr.screenAll(out, data)
	return out, nil
}
