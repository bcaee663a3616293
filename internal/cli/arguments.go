package cli

import "strings"

const (
	helpArgument            = "--" + helpFlagName
	exclusionArgument       = "--" + exclusionFlagName
	exclusionArgumentPrefix = exclusionArgument + "="
)

// normalizeArguments reduces raw process arguments to the ones the root
// command understands. A --help anywhere wins over everything else, including
// a position where it would otherwise be consumed as the --exclude value.
// Every --exclude is rewritten to its inline form so a value starting with a
// dash stays a value. A trailing --exclude without a value is dropped, as is
// every other argument, so pflag never sees shorthands such as -h.
func normalizeArguments(arguments []string) []string {
	for _, argument := range arguments {
		if argument == helpArgument {
			return []string{helpArgument}
		}
	}
	normalized := []string{}
	for argumentIndex := 0; argumentIndex < len(arguments); argumentIndex++ {
		argument := arguments[argumentIndex]
		switch {
		case argument == exclusionArgument:
			if argumentIndex+1 < len(arguments) {
				argumentIndex++
				normalized = append(normalized, exclusionArgumentPrefix+arguments[argumentIndex])
			}
		case strings.HasPrefix(argument, exclusionArgumentPrefix):
			normalized = append(normalized, argument)
		}
	}
	return normalized
}

// firstExclusion returns the first non-empty --exclude value as given.
func firstExclusion(exclusions []string) string {
	for _, exclusion := range exclusions {
		if exclusion != "" {
			return exclusion
		}
	}
	return ""
}
