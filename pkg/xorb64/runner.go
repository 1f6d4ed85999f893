package xorb64

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Runner executes a Request against a filesystem and output stream.
type Runner struct {
	fs     afero.Fs
	stdout io.Writer
	log    hclog.Logger
}

// RunnerOpt configures a Runner in NewRunner.
// If any RunnerOpt returns an error, then construction stops and the error is returned.
type RunnerOpt = func(r *Runner) error

// UseFs sets the filesystem used to read input files and write output files.
// The default is the OS filesystem.
func UseFs(fs afero.Fs) RunnerOpt {
	return func(r *Runner) error {
		if fs == nil {
			return errors.New("nil filesystem")
		}
		r.fs = fs
		return nil
	}
}

// UseStdout sets where results are printed when the Request has no Output path.
// The default is os.Stdout.
func UseStdout(w io.Writer) RunnerOpt {
	return func(r *Runner) error {
		if w == nil {
			return errors.New("nil output writer")
		}
		r.stdout = w
		return nil
	}
}

// UseLogger sets the logger used for debug output.
func UseLogger(logger hclog.Logger) RunnerOpt {
	return func(r *Runner) error {
		if logger == nil {
			logger = hclog.NewNullLogger()
		}
		r.log = logger
		return nil
	}
}

// NewRunner creates a Runner using the options provided as zero or more RunnerOpt.
func NewRunner(opts ...RunnerOpt) (*Runner, error) {
	r := &Runner{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		log:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Run validates req and performs the requested operation.
// Nothing is opened or written if validation fails.
func (r *Runner) Run(req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	log := r.log.With("operation", req.Op.String())

	var (
		result []byte
		err    error
	)
	switch req.Op {
	case OpEncrypt:
		var encoded string
		encoded, err = Encrypt(req.Key, []byte(*req.Text))
		result = []byte(encoded)
	case OpDecrypt:
		result, err = Decrypt(req.Key, *req.Text)
	case OpEncryptFile, OpDecryptFile:
		result, err = r.transformFile(log, *req.File, req.Key, req.Op.Decrypts())
	}
	if err != nil {
		log.Debug("operation failed", "error", err)
		return err
	}
	log.Debug("operation complete", "output_bytes", len(result))
	return r.emit(log, req.Output, result)
}

func (r *Runner) transformFile(log hclog.Logger, path string, key []byte, decrypt bool) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileIO, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if info, err := f.Stat(); err == nil {
		if info.IsDir() {
			return nil, fmt.Errorf("%w: '%s' is a directory", ErrFileIO, path)
		}
		log.Debug("reading input file", "path", path, "size", info.Size())
	}

	var (
		buf bytes.Buffer
		src io.Reader = &fileReader{path: path, r: f}
	)
	if !decrypt {
		if err := EncryptStream(&buf, key, src); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	encoded, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if err := DecryptStream(&buf, key, bytes.NewReader(trimLineBreak(encoded))); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// trimLineBreak drops a single trailing "\n" or "\r\n", as left behind when encrypted output is saved from a terminal.
func trimLineBreak(data []byte) []byte {
	if trimmed, ok := bytes.CutSuffix(data, []byte("\n")); ok {
		return bytes.TrimSuffix(trimmed, []byte("\r"))
	}
	return data
}

func (r *Runner) emit(log hclog.Logger, output *string, result []byte) error {
	if output != nil {
		log.Debug("writing output file", "path", *output)
		if err := afero.WriteFile(r.fs, *output, result, 0600); err != nil {
			return fmt.Errorf("%w: %v", ErrFileIO, err)
		}
		return nil
	}
	if _, err := r.stdout.Write(append(result, '\n')); err != nil {
		return fmt.Errorf("%w: failed to write result: %v", ErrFileIO, err)
	}
	return nil
}

// fileReader tags read failures as ErrFileIO so they aren't confused with decoding failures.
type fileReader struct {
	path string
	r    io.Reader
}

func (f *fileReader) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: failed to read '%s': %v", ErrFileIO, f.path, err)
	}
	return n, err
}
