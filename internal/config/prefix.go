package config

import "strings"

// NormalizePrefix cleans a user-supplied path filter for S3 prefix matching.
// A trailing slash is significant ("docs/" must not match "docs-old") and is
// preserved; a leading slash never matches anything in S3 and is stripped.
func NormalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	prefix = strings.ReplaceAll(prefix, "\\", "/")
	for strings.Contains(prefix, "//") {
		prefix = strings.ReplaceAll(prefix, "//", "/")
	}
	return strings.TrimPrefix(prefix, "/")
}
