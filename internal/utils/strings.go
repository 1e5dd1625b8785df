package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// GenerateRandomString generates a random string of the specified length
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length], nil
}

// GenerateRandomHex generates a random hex string of the specified length
func GenerateRandomHex(length int) (string, error) {
	bytes := make([]byte, length/2)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	// Convert string to runes to handle Unicode characters properly
	runes := []rune(s)

	// If the string is already shorter than or equal to maxLength, return it as is
	if len(runes) <= maxLength {
		return s
	}

	// Handle edge cases where maxLength is too small to fit the ellipsis
	if maxLength <= 3 {
		return "..."
	}

	// Truncate the string and add ellipsis
	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString removes unwanted characters from a string
func SanitizeString(s string) string {
	// Replace control characters with spaces, then normalize multiple spaces to single space
	result := regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`).ReplaceAllString(s, " ")
	// Replace multiple consecutive spaces with single space
	result = regexp.MustCompile(`\s+`).ReplaceAllString(result, " ")
	// Trim leading and trailing spaces
	return strings.TrimSpace(result)
}
