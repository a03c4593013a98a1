// Package randid generates short random identifiers.
package randid

import (
	"crypto/rand"
	"math/big"
)

// alphabet leaves out 0, 1, I and O so codes read back unambiguously.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var alphabetLen = big.NewInt(int64(len(alphabet)))

// Reference returns an uppercase code of length n suitable for showing to
// users. n <= 0 yields "".
func Reference(n int) string {
	if n <= 0 {
		return ""
	}

	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand does not fail on supported platforms.
			panic(err)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}
