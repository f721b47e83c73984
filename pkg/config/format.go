package config

// FormatMatcherID formats a matcher identifier based on the given format.
// Falls back to ID if name is empty.
func FormatMatcherID(format MatcherFormat, matcherID, matcherName string) string {
	// Fall back to ID if name is empty
	if matcherName == "" {
		return matcherID
	}

	switch format {
	case MatcherFormatID:
		return matcherID
	case MatcherFormatCombined:
		return matcherID + "/" + matcherName
	case MatcherFormatName:
		return matcherName
	default:
		// Default to name format
		return matcherName
	}
}
