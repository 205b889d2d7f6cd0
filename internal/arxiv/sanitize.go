// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "strings"

// titleMaxRunes bounds the sanitized title, counted in characters rather
// than bytes so multibyte titles are not cut mid-rune.
const titleMaxRunes = 96

// reservedFilenameChars are rejected in a filename component on at least
// one supported platform.
const reservedFilenameChars = `<>:"/\|?*`

// CompactText collapses every whitespace run to a single space and trims
// leading and trailing whitespace.
func CompactText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// SanitizeTitle converts arbitrary title text into a safe, bounded
// filename component: whitespace collapsed, path separators replaced,
// tokens joined with underscores, truncated to 96 characters, reserved
// characters removed. The result is never empty; titles that sanitize
// away entirely become "paper".
func SanitizeTitle(title string) string {
	compact := CompactText(title)
	compact = strings.NewReplacer("/", " ", `\`, " ").Replace(compact)
	joined := strings.Join(strings.Fields(compact), "_")

	runes := []rune(joined)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}

	var b strings.Builder
	for _, r := range runes {
		if r < 0x20 || strings.ContainsRune(reservedFilenameChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := strings.TrimRight(b.String(), ". ")
	if cleaned == "" {
		return "paper"
	}
	return cleaned
}
