package xorb64

import (
	"fmt"
	"strings"
)

// Operation selects what a Request does.
type Operation int

const (
	OpEncrypt Operation = iota + 1
	OpDecrypt
	OpEncryptFile
	OpDecryptFile
)

var opNames = map[Operation]string{
	OpEncrypt:     "encrypt",
	OpDecrypt:     "decrypt",
	OpEncryptFile: "encrypt-file",
	OpDecryptFile: "decrypt-file",
}

// Operations lists every valid Operation in display order.
func Operations() []Operation {
	return []Operation{OpEncrypt, OpDecrypt, OpEncryptFile, OpDecryptFile}
}

func (o Operation) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Valid reports whether o is one of the defined operations.
func (o Operation) Valid() bool {
	_, ok := opNames[o]
	return ok
}

// UsesFile reports whether the operation reads its input from a file instead of the text argument.
func (o Operation) UsesFile() bool {
	return o == OpEncryptFile || o == OpDecryptFile
}

// Decrypts reports whether the operation reverses a previous encryption.
func (o Operation) Decrypts() bool {
	return o == OpDecrypt || o == OpDecryptFile
}

// ParseOperation accepts an operation name like "encrypt-file".
// Matching ignores case, dashes, and underscores, so "EncryptFile" and "encrypt_file" work too.
func ParseOperation(name string) (Operation, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for _, op := range Operations() {
		if strings.ReplaceAll(op.String(), "-", "") == norm {
			return op, nil
		}
	}
	names := make([]string, 0, len(opNames))
	for _, op := range Operations() {
		names = append(names, op.String())
	}
	return 0, fmt.Errorf("%w: unknown operation '%s', expected one of %s", ErrInvalidArguments, name, strings.Join(names, ", "))
}
