/*
Package xor applies a repeating-key XOR screen to byte sequences.

Note that this is NOT encryption, since it is easily reversible.
It's obfuscation: it keeps plain text from casual observation, and applying the same key a second time restores the original bytes.

# How it works:

Every byte passing through Screen, a Reader, or a Writer is combined with a key byte using bitwise XOR.
Once a key byte is used, the screen progresses to the next byte in the key.
When the last byte is used, the first will be used again, operating like a ring buffer.
In other words, output[i] = data[i] ^ key[i % len(key)].

A Reader or Writer keeps its key position across calls, so a stream split over many reads or writes is screened exactly like the same bytes passed to Screen at once.

# Important note:

An empty key is rejected with ErrInvalidKey.
The same key must be provided to reverse the process.
*/
package xor
