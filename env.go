package fio

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by AccountFromEnv.
const (
	EnvToken   = "FIO_TOKEN"
	EnvAccount = "FIO_ACCOUNT"
)

// AccountFromEnv builds an Account from FIO_TOKEN and FIO_ACCOUNT. A .env
// file in the working directory is loaded first when present.
func AccountFromEnv(client *Client) (*Account, error) {
	_ = godotenv.Load()

	token := os.Getenv(EnvToken)
	if token == "" {
		return nil, fmt.Errorf("environment variable %s is not set", EnvToken)
	}

	accountNumber := os.Getenv(EnvAccount)
	if accountNumber == "" {
		return nil, fmt.Errorf("environment variable %s is not set", EnvAccount)
	}

	return NewAccount(accountNumber, token, client), nil
}
