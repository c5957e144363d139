package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultCodeLength = 6

// digitCodeGenerator draws each digit from crypto/rand, so codes keep leading zeros.
type digitCodeGenerator struct {
	length int
}

// NewCodeGenerator builds the generator from verification.codeLength.
func NewCodeGenerator(cfg *config.Config) service.CodeGenerator {
	length := defaultCodeLength
	if cfg.Verification != nil && cfg.Verification.CodeLength > 0 {
		length = cfg.Verification.CodeLength
	}

	return NewDigitCodeGenerator(length)
}

// NewDigitCodeGenerator creates a generator of length-digit codes.
func NewDigitCodeGenerator(length int) service.CodeGenerator {
	return &digitCodeGenerator{length: length}
}

func (g *digitCodeGenerator) Generate() (string, error) {
	ten := big.NewInt(10)
	code := make([]byte, g.length)

	for i := range code {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "generate verification code")
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}
