package xorb64

import (
	"io"

	"github.com/saylorsolutions/xorb64/pkg/b64"
	"github.com/saylorsolutions/xorb64/pkg/xor"
)

// Encrypt screens plaintext with key and returns it as base64 text.
func Encrypt(key, plaintext []byte) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	screened, err := xor.Screen(key, plaintext)
	if err != nil {
		return "", err
	}
	return b64.Encode(screened), nil
}

// Decrypt decodes base64 text and reverses the screen applied by Encrypt.
// The result is returned as raw bytes, and may not be valid UTF-8 if the wrong key is used.
func Decrypt(key []byte, encoded string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	screened, err := b64.Decode(encoded)
	if err != nil {
		return nil, err
	}
	return xor.Screen(key, screened)
}

// EncryptStream does the same thing as Encrypt, reading plaintext from r and writing base64 text to w.
func EncryptStream(w io.Writer, key []byte, r io.Reader) error {
	if err := checkKey(key); err != nil {
		return err
	}
	xr, err := xor.NewReader(r, key)
	if err != nil {
		return err
	}
	enc := b64.NewEncoder(w)
	if _, err := io.Copy(enc, xr); err != nil {
		return err
	}
	return enc.Close()
}

// DecryptStream does the same thing as Decrypt, reading base64 text from r and writing raw bytes to w.
func DecryptStream(w io.Writer, key []byte, r io.Reader) error {
	if err := checkKey(key); err != nil {
		return err
	}
	xw, err := xor.NewWriter(w, key)
	if err != nil {
		return err
	}
	_, err = io.Copy(xw, b64.NewDecoder(r))
	return err
}
