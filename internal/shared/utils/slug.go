package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9 -]`)
	slugSeparators   = regexp.MustCompile(`[ -]+`)
)

// GenerateSlug derives the URL-safe identifier of an article from its title.
// "  Hello, World -- again " → "hello-world-again"
func GenerateSlug(title string) string {
	// Step 1: Trim khoảng trắng hai đầu
	trimmed := strings.TrimSpace(title)

	// Step 2: Bỏ mọi ký tự ngoài [a-zA-Z0-9 -]
	cleaned := slugInvalidChars.ReplaceAllString(trimmed, "")

	// Step 3: Gộp chuỗi space/hyphen liên tiếp thành một hyphen
	hyphenated := slugSeparators.ReplaceAllString(cleaned, "-")

	// Step 4: Bỏ hyphen đầu/cuối rồi lowercase
	return strings.ToLower(strings.Trim(hyphenated, "-"))
}
