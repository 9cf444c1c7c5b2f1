package util

// MaxLogBodySize is the default cap for logged response bodies (10KB).
const MaxLogBodySize = 10 * 1024

// TruncateBody caps s at maxSize bytes, marking the cut with
// "...(truncated)". maxSize <= 0 uses MaxLogBodySize.
func TruncateBody(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogBodySize
	}
	if len(s) > maxSize {
		return s[:maxSize] + "...(truncated)"
	}
	return s
}
