package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	maxKeyFileBytes = 10 * 1024

	errKeyFileStat       = "failed to stat api key file: %w"
	errKeyFileRead       = "failed to read api key file: %w"
	errKeyFileTooBig     = "api key file too large (%d bytes, max %d)"
	errKeyFileEmpty      = "api key file is empty"
	errKeyFileNotRegular = "api key file must be a regular file"
	errKeyFileTokens     = "api key file must hold a single key, found %d tokens"
)

// ReadAPIKeyFile loads the Bus Tracker key from path. The key ends up in a
// query string, so the file has to hold exactly one whitespace-free token.
func ReadAPIKeyFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf(errKeyFileStat, err)
	}
	if !info.Mode().IsRegular() {
		return "", errors.New(errKeyFileNotRegular)
	}
	if info.Size() > maxKeyFileBytes {
		return "", fmt.Errorf(errKeyFileTooBig, info.Size(), maxKeyFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(errKeyFileRead, err)
	}

	switch tokens := strings.Fields(string(data)); len(tokens) {
	case 0:
		return "", errors.New(errKeyFileEmpty)
	case 1:
		return tokens[0], nil
	default:
		return "", fmt.Errorf(errKeyFileTokens, len(tokens))
	}
}
