/*
Package xorb64 ties the xor screen and the b64 codec together into the encrypt and decrypt operations used by the xorb64 command.

Encrypting screens the input with a repeating key and encodes the result as standard base64 text.
Decrypting decodes base64 text and screens it again with the same key, which restores the original bytes.
Decrypted output is returned as raw bytes, so multi-byte text round trips intact.

As with package xor, this is obfuscation and NOT encryption in any security relevant sense.

# Operations:

  - encrypt and decrypt work on a literal text argument.
  - encrypt-file and decrypt-file read their input from a file through an afero.Fs.

A Request is validated before any I/O happens, see Request.Validate.
Every error returned from this package matches one of ErrInvalidArguments, ErrFileIO, or ErrMalformedEncoding with errors.Is.
*/
package xorb64
