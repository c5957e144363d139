package service

// CodeGenerator produces the one-time login verification code.
type CodeGenerator interface {
	Generate() (string, error)
}
