package xorb64

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	var stdout bytes.Buffer
	r, err := NewRunner(UseFs(fs), UseStdout(&stdout), UseLogger(hclog.NewNullLogger()))
	require.NoError(t, err)
	return r, fs, &stdout
}

func TestRunner_Text(t *testing.T) {
	r, _, stdout := newTestRunner(t)

	require.NoError(t, r.Run(Request{Op: OpEncrypt, Key: []byte("key"), Text: strPtr("Hi")}))
	assert.Equal(t, "Iww=\n", stdout.String())

	stdout.Reset()
	require.NoError(t, r.Run(Request{Op: OpDecrypt, Key: []byte("key"), Text: strPtr("Iww=")}))
	assert.Equal(t, "Hi\n", stdout.String())
}

func TestRunner_File(t *testing.T) {
	r, fs, stdout := newTestRunner(t)
	const plaintext = "first line\nsecond line ✓\n"
	require.NoError(t, afero.WriteFile(fs, "plain.txt", []byte(plaintext), 0600))

	require.NoError(t, r.Run(Request{Op: OpEncryptFile, Key: []byte("secret"), File: strPtr("plain.txt")}))
	expected, err := Encrypt([]byte("secret"), []byte(plaintext))
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", stdout.String())

	// A file captured from stdout keeps its trailing newline, which decrypt-file tolerates.
	require.NoError(t, afero.WriteFile(fs, "cipher.txt", stdout.Bytes(), 0600))
	stdout.Reset()
	require.NoError(t, r.Run(Request{Op: OpDecryptFile, Key: []byte("secret"), File: strPtr("cipher.txt")}))
	assert.Equal(t, plaintext+"\n", stdout.String())
}

func TestRunner_DecryptFileLineBreak(t *testing.T) {
	r, fs, stdout := newTestRunner(t)
	accepted := map[string]string{
		"lf.txt":     "Iww=\n",
		"crlf.txt":   "Iww=\r\n",
		"no-eol.txt": "Iww=",
	}
	for name, content := range accepted {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0600))
		stdout.Reset()
		assert.NoError(t, r.Run(Request{Op: OpDecryptFile, Key: []byte("key"), File: strPtr(name)}), name)
		assert.Equal(t, "Hi\n", stdout.String(), name)
	}

	rejected := map[string]string{
		"two-eol.txt": "Iww=\n\n",
		"inner.txt":   "I\nww=",
		"leading.txt": "\nIww=",
	}
	for name, content := range rejected {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0600))
		err := r.Run(Request{Op: OpDecryptFile, Key: []byte("key"), File: strPtr(name)})
		assert.ErrorIs(t, err, ErrMalformedEncoding, name)
	}

	err := r.Run(Request{Op: OpDecrypt, Key: []byte("key"), Text: strPtr("Iww=\n")})
	assert.ErrorIs(t, err, ErrMalformedEncoding, "text input is never trimmed")
}

func TestTrimLineBreak(t *testing.T) {
	assert.Equal(t, "abc", string(trimLineBreak([]byte("abc\n"))))
	assert.Equal(t, "abc", string(trimLineBreak([]byte("abc\r\n"))))
	assert.Equal(t, "abc\n", string(trimLineBreak([]byte("abc\n\n"))))
	assert.Equal(t, "abc\r", string(trimLineBreak([]byte("abc\r"))))
	assert.Empty(t, trimLineBreak([]byte("\n")))
}

func TestRunner_Output(t *testing.T) {
	r, fs, stdout := newTestRunner(t)
	require.NoError(t, afero.WriteFile(fs, "plain.bin", []byte{0x00, 0xff, 0x10}, 0600))

	require.NoError(t, r.Run(Request{Op: OpEncryptFile, Key: []byte("k"), File: strPtr("plain.bin"), Output: strPtr("cipher.txt")}))
	require.NoError(t, r.Run(Request{Op: OpDecryptFile, Key: []byte("k"), File: strPtr("cipher.txt"), Output: strPtr("round.bin")}))
	assert.Empty(t, stdout.String())

	got, err := afero.ReadFile(fs, "round.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0x10}, got)
}

func TestRunner_Neg(t *testing.T) {
	r, fs, stdout := newTestRunner(t)

	err := r.Run(Request{Op: OpEncryptFile, Key: []byte("k"), File: strPtr("missing.txt")})
	assert.ErrorIs(t, err, ErrFileIO)

	require.NoError(t, fs.Mkdir("dir", 0700))
	err = r.Run(Request{Op: OpEncryptFile, Key: []byte("k"), File: strPtr("dir")})
	assert.ErrorIs(t, err, ErrFileIO)

	require.NoError(t, afero.WriteFile(fs, "bad.txt", []byte("not*base64"), 0600))
	err = r.Run(Request{Op: OpDecryptFile, Key: []byte("k"), File: strPtr("bad.txt")})
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	err = r.Run(Request{Op: OpDecrypt, Key: []byte("k"), Text: strPtr("Iww")})
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	err = r.Run(Request{Op: OpEncrypt, Key: nil, Text: strPtr("Hi")})
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Empty(t, stdout.String())
}

func TestRunner_ValidatesBeforeIO(t *testing.T) {
	fs := &openSpyFs{Fs: afero.NewMemMapFs()}
	require.NoError(t, afero.WriteFile(fs.Fs, "plain.txt", []byte("data"), 0600))
	r, err := NewRunner(UseFs(fs), UseStdout(&bytes.Buffer{}))
	require.NoError(t, err)

	err = r.Run(Request{Op: OpEncryptFile, Key: []byte("k"), File: strPtr("plain.txt"), Text: strPtr("Hi")})
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Zero(t, fs.opens)
}

func TestRunner_ReadFailure(t *testing.T) {
	readErr := errors.New("device gone")
	fs := &failingReadFs{Fs: afero.NewMemMapFs(), err: readErr}
	require.NoError(t, afero.WriteFile(fs.Fs, "cipher.txt", []byte("Iww="), 0600))
	r, err := NewRunner(UseFs(fs), UseStdout(&bytes.Buffer{}))
	require.NoError(t, err)

	err = r.Run(Request{Op: OpDecryptFile, Key: []byte("k"), File: strPtr("cipher.txt")})
	assert.ErrorIs(t, err, ErrFileIO)
	assert.NotErrorIs(t, err, ErrMalformedEncoding)
}

func TestNewRunner_Neg(t *testing.T) {
	_, err := NewRunner(UseFs(nil))
	assert.Error(t, err)
	_, err = NewRunner(UseStdout(nil))
	assert.Error(t, err)
}

type openSpyFs struct {
	afero.Fs
	opens int
}

func (s *openSpyFs) Open(name string) (afero.File, error) {
	s.opens++
	return s.Fs.Open(name)
}

func (s *openSpyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	s.opens++
	return s.Fs.OpenFile(name, flag, perm)
}

type failingReadFs struct {
	afero.Fs
	err error
}

func (f *failingReadFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &failingFile{File: file, err: f.err}, nil
}

type failingFile struct {
	afero.File
	err error
}

func (f *failingFile) Read([]byte) (int, error) {
	return 0, f.err
}
