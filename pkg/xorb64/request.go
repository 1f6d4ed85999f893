package xorb64

import (
	"fmt"
)

// Request describes a single run.
// Text and File are pointers so that an explicitly empty argument can be told apart from a missing one.
type Request struct {
	Op     Operation
	Key    []byte
	Text   *string
	File   *string
	Output *string
}

// Validate checks the Key along with everything ValidateArgs checks.
// Any problem is reported as ErrInvalidArguments.
func (r Request) Validate() error {
	if err := r.ValidateArgs(); err != nil {
		return err
	}
	return checkKey(r.Key)
}

// ValidateArgs checks that the combination of operation and arguments makes sense, ignoring the Key.
// Text operations need Text and can't have File, file operations are the other way around.
func (r Request) ValidateArgs() error {
	if !r.Op.Valid() {
		return fmt.Errorf("%w: an operation is required", ErrInvalidArguments)
	}
	if r.Op.UsesFile() {
		if r.Text != nil {
			return fmt.Errorf("%w: the 'text' argument cannot be used with 'encrypt-file' or 'decrypt-file' operations", ErrInvalidArguments)
		}
		if r.File == nil || len(*r.File) == 0 {
			return fmt.Errorf("%w: the 'file' argument is required for 'encrypt-file' or 'decrypt-file' operations", ErrInvalidArguments)
		}
	} else {
		if r.File != nil {
			return fmt.Errorf("%w: the 'file' argument cannot be used with 'encrypt' or 'decrypt' operations", ErrInvalidArguments)
		}
		if r.Text == nil {
			return fmt.Errorf("%w: the 'text' argument is required for 'encrypt' or 'decrypt' operations", ErrInvalidArguments)
		}
	}
	if r.Output != nil && len(*r.Output) == 0 {
		return fmt.Errorf("%w: the 'out' argument must not be empty", ErrInvalidArguments)
	}
	return nil
}
