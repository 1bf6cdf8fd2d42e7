package constants

import "strings"

// PDF is the only document format the pipeline ingests.
const PDF = "PDF"

// AllowedExtensions holds the file extensions accepted at ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted) extension is ingestible.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
