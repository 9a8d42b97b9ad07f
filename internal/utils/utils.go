package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// ShortenAddress renders 0x1234...abcd for display and log lines.
// Addresses of ten characters or fewer are returned unchanged.
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// GenerateRandomString generates a random string of the specified length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}
