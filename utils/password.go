package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// hashConfig is the argon2id parameter set shared by every hash. Built once
// so admin registrations don't reconstruct it per call.
var hashConfig = argon2.DefaultConfig()

// HashPassword returns the argon2id encoded form of password, salt included.
func HashPassword(password string) (string, error) {
	encoded, err := hashConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks password against an encoded hash produced by
// HashPassword. The parameters are read back from the hash itself, so
// hashes stored under older parameter sets keep verifying.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
