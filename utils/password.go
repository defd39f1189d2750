package utils

import (
	"resto-admin/config"

	"github.com/matthewhartstonge/argon2"
)

// argonConfig starts from the library defaults and applies the deployment's
// cost overrides, so constrained environments can lower the hashing cost
// without a rebuild.
func argonConfig() argon2.Config {
	cfg := argon2.DefaultConfig()
	if c := config.AppConfig; c != nil {
		if c.ArgonMemoryKiB > 0 {
			cfg.MemoryCost = uint32(c.ArgonMemoryKiB)
		}
		if c.ArgonTimeCost > 0 {
			cfg.TimeCost = uint32(c.ArgonTimeCost)
		}
	}
	return cfg
}

func HashPassword(password string) (string, error) {
	argon := argonConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
