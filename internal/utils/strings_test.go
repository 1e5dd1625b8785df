package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"Length 1", 1},
		{"Length 8", 8},
		{"Length 16", 16},
		{"Length 32", 32},
		{"Length 64", 64},
		{"Length 128", 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateRandomString(tt.length)
			
			assert.NoError(t, err, "Should not return an error")
			assert.Equal(t, tt.length, len(result), "Result length should match requested length")
			
			// Verify it's a valid base64 URL-encoded string (truncated)
			for _, char := range result {
				assert.True(t, 
					(char >= 'A' && char <= 'Z') || 
					(char >= 'a' && char <= 'z') || 
					(char >= '0' && char <= '9') || 
					char == '-' || char == '_',
					"Character should be valid base64 URL character")
			}
		})
	}
}

func TestGenerateRandomString_Uniqueness(t *testing.T) {
	t.Run("Multiple calls produce different results", func(t *testing.T) {
		length := 16
		results := make(map[string]bool)
		
		// Generate 100 random strings and check for uniqueness
		for i := 0; i < 100; i++ {
			result, err := GenerateRandomString(length)
			assert.NoError(t, err)
			
			// Check if we've seen this result before
			assert.False(t, results[result], "Generated string should be unique")
			results[result] = true
		}
	})
}

func TestGenerateRandomString_EdgeCases(t *testing.T) {
	t.Run("Zero length", func(t *testing.T) {
		result, err := GenerateRandomString(0)
		assert.NoError(t, err)
		assert.Empty(t, result, "Zero length should return empty string")
	})
}

func TestGenerateRandomHex(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"Length 2", 2},
		{"Length 8", 8},
		{"Length 16", 16},
		{"Length 32", 32},
		{"Length 64", 64},
		{"Length 128", 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateRandomHex(tt.length)
			
			assert.NoError(t, err, "Should not return an error")
			assert.Equal(t, tt.length, len(result), "Result length should match requested length")
			
			// Verify it's a valid hex string
			for _, char := range result {
				assert.True(t, 
					(char >= '0' && char <= '9') || 
					(char >= 'a' && char <= 'f'),
					"Character should be valid hex character")
			}
			
			// Verify it can be decoded as hex
			_, err = hex.DecodeString(result)
			assert.NoError(t, err, "Result should be valid hex string")
		})
	}
}

func TestGenerateRandomHex_Uniqueness(t *testing.T) {
	t.Run("Multiple calls produce different results", func(t *testing.T) {
		length := 16
		results := make(map[string]bool)
		
		// Generate 100 random hex strings and check for uniqueness
		for i := 0; i < 100; i++ {
			result, err := GenerateRandomHex(length)
			assert.NoError(t, err)
			
			// Check if we've seen this result before
			assert.False(t, results[result], "Generated hex string should be unique")
			results[result] = true
		}
	})
}

func TestGenerateRandomHex_EdgeCases(t *testing.T) {
	t.Run("Zero length", func(t *testing.T) {
		result, err := GenerateRandomHex(0)
		assert.NoError(t, err)
		assert.Empty(t, result, "Zero length should return empty string")
	})

	t.Run("Odd length", func(t *testing.T) {
		// Note: This will generate length/2 bytes, so odd lengths will be truncated
		result, err := GenerateRandomHex(3)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result), "Odd length should be truncated to even")
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"String shorter than max", "hello", 10, "hello"},
		{"String equal to max", "hello", 5, "hello"},
		{"String longer than max", "hello world", 8, "hello..."},
		{"Empty string", "", 5, ""},
		{"Max length 0", "hello", 0, "..."},
		{"Max length 1", "hello", 1, "..."},
		{"Max length 2", "hello", 2, "..."},
		{"Max length 3", "hello", 3, "..."},
		{"Max length 4", "hello", 4, "h..."},
		{"Long string", "This is a very long string that needs to be truncated", 20, "This is a very lo..."},
		{"Unicode characters", "héllo wörld", 8, "héllo..."},
		{"Single character", "a", 5, "a"},
		{"Exactly at ellipsis boundary", "hello", 8, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLength)
			assert.Equal(t, tt.expected, result, "Truncated string should match expected")
			
			// Verify result length doesn't exceed maxLength
			// For maxLength 0, 1, 2, we return "..." which is 3 characters
			if tt.maxLength > 0 && tt.maxLength > 2 {
				assert.LessOrEqual(t, len([]rune(result)), tt.maxLength, "Result should not exceed max length")
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal string", "hello world", "hello world"},
		{"String with newlines", "hello\nworld", "hello world"},
		{"String with tabs", "hello\tworld", "hello world"},
		{"String with carriage returns", "hello\rworld", "hello world"},
		{"Mixed whitespace", "hello\n\t\rworld", "hello world"},
		{"Multiple spaces", "hello    world", "hello world"},
		{"Leading and trailing spaces", "  hello world  ", "hello world"},
		{"Only whitespace", "   \n\t\r   ", ""},
		{"Empty string", "", ""},
		{"Single word", "hello", "hello"},
		{"Multiple newlines", "hello\n\n\nworld", "hello world"},
		{"Complex mixed", "  hello\n\tworld\r\n  test  ", "hello world test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeString(tt.input)
			assert.Equal(t, tt.expected, result, "Sanitized string should match expected")
			
			// Verify no control characters remain
			for _, char := range result {
				assert.False(t, char == '\n' || char == '\t' || char == '\r', 
					"Result should not contain control characters")
			}
			
			// Verify no leading/trailing spaces
			if len(result) > 0 {
				assert.NotEqual(t, ' ', result[0], "Result should not start with space")
				assert.NotEqual(t, ' ', result[len(result)-1], "Result should not end with space")
			}
		})
	}
}



// Benchmark tests
func BenchmarkGenerateRandomString(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateRandomString(32)
	}
}

func BenchmarkGenerateRandomHex(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateRandomHex(32)
	}
}

func BenchmarkTruncate(b *testing.B) {
	text := "This is a long string that needs to be truncated for testing purposes"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Truncate(text, 20)
	}
}