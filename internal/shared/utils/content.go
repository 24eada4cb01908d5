package utils

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// LineBreak is the markup every line break becomes in normalized content
const LineBreak = "<br />\n"

// Longest sequences first so "\r\n" is not split into two breaks.
var lineBreakReplacer = strings.NewReplacer(
	"\r\n", LineBreak,
	"\n\r", LineBreak,
	"\r", LineBreak,
	"\n", LineBreak,
)

// NormalizeContent converts raw multi-line text into display markup. nil stays nil.
// The conversion is one-way: every newline style ends up as LineBreak.
func NormalizeContent(raw *string) *string {
	if raw == nil {
		return nil
	}
	normalized := lineBreakReplacer.Replace(*raw)
	return &normalized
}

// TimeAgo formats t relative to now, e.g. "3 minutes ago"
func TimeAgo(t time.Time) string {
	return humanize.Time(t)
}
