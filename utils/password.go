package utils

import "github.com/matthewhartstonge/argon2"

// Admin credentials are stored argon2id-encoded. The encoded form carries its
// own salt and parameters, so verification needs no shared config.
var argonConfig = argon2.DefaultConfig()

func HashPassword(plain string) (string, error) {
	encoded, err := argonConfig.HashEncoded([]byte(plain))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether plain matches the stored encoding. A
// malformed encoding surfaces as an error, not a silent mismatch.
func VerifyPassword(encoded, plain string) (bool, error) {
	return argon2.VerifyEncoded([]byte(plain), []byte(encoded))
}
