package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randomCode returns a uniformly random numeric code of the given
// width, zero-padded. The code is a delivery secret, not a key.
func randomCode(digits int) string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64())
}
