package xor

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewXorScreenNeg(t *testing.T) {
	_, err := newXorScreen(nil)
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = newXorScreen([]byte{})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestScreen(t *testing.T) {
	out, err := Screen([]byte("key"), []byte("Hi"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x23, 0x0c}, out)
}

func TestScreen_RepeatingKey(t *testing.T) {
	const stanza = "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	expected := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"

	out, err := Screen([]byte("ICE"), []byte(stanza))
	assert.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(out))
}

func TestScreen_Symmetric(t *testing.T) {
	keys := [][]byte{
		{0x00},
		{0xff},
		[]byte("key"),
		{0xde, 0xad, 0xbe, 0xef},
		[]byte("a key that is longer than the data"),
	}
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		[]byte("A string with some text"),
		[]byte("héllo wörld ✓"),
		{0xff, 0x00, 0x7f, 0x80, 0x01},
	}
	for _, key := range keys {
		for _, in := range inputs {
			once, err := Screen(key, in)
			assert.NoError(t, err)
			assert.Len(t, once, len(in))
			twice, err := Screen(key, once)
			assert.NoError(t, err)
			assert.Equal(t, len(in), len(twice))
			if len(in) > 0 {
				assert.Equal(t, in, twice)
			}
		}
	}
}

func TestScreen_DoesNotModifyInput(t *testing.T) {
	in := []byte("unchanged")
	_, err := Screen([]byte{0x01}, in)
	assert.NoError(t, err)
	assert.Equal(t, "unchanged", string(in))
}

func TestScreen_Neg(t *testing.T) {
	out, err := Screen(nil, []byte("data"))
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Nil(t, out)
}
