package helpers

// StringValue returns the string a nullable column was scanned into, or ""
// when the column was NULL.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

