package card

import (
	"crypto/rand"
	"math/big"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
)

// NumberGenerator produces candidate card numbers
type NumberGenerator interface {
	Generate() (string, error)
}

// RandomNumberGenerator draws Luhn-valid 16-digit numbers under a fixed issuer prefix
type RandomNumberGenerator struct {
	prefix string
}

// NewRandomNumberGenerator creates a generator; prefix must be shorter than 16 digits
func NewRandomNumberGenerator(prefix string) *RandomNumberGenerator {
	return &RandomNumberGenerator{prefix: prefix}
}

// Generate returns a fresh random number
func (g *RandomNumberGenerator) Generate() (string, error) {
	payload := []byte(g.prefix)
	ten := big.NewInt(10)
	for len(payload) < entity.CardNumberLength-1 {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		payload = append(payload, byte('0'+n.Int64()))
	}
	return string(payload) + string(entity.LuhnCheckDigit(string(payload))), nil
}
