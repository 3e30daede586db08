package canonical

import (
	"strings"
	"unicode"
)

// ToolName returns a shell-safe command name for a method. It uses a
// double-underscore separator between the API and the method ID and keeps
// dots out of the result.
func ToolName(apiName, operationID string) string {
	return sanitizeName(apiName) + "__" + sanitizeName(operationID)
}

// ShortID strips the API name prefix from a discovery method ID
// ("factchecktools.claims.search" -> "claims.search").
func ShortID(apiName, id string) string {
	if apiName != "" && strings.HasPrefix(id, apiName+".") {
		return strings.TrimPrefix(id, apiName+".")
	}
	return id
}

func sanitizeName(input string) string {
	if input == "" {
		return "op"
	}
	var b strings.Builder
	for _, r := range input {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "op"
	}
	return out
}
