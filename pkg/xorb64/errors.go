package xorb64

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/xorb64/pkg/b64"
	"github.com/saylorsolutions/xorb64/pkg/xor"
)

var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrFileIO            = errors.New("file error")
	ErrMalformedEncoding = b64.ErrMalformedEncoding
)

func checkKey(key []byte) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: %w: key must not be empty", ErrInvalidArguments, xor.ErrInvalidKey)
	}
	return nil
}
