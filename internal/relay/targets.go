package relay

import (
	"regexp"
	"strings"
)

// targetPattern matches one notification directive: a sigil followed by at
// least one name character. & and # address channels, @ addresses a user.
var targetPattern = regexp.MustCompile(`[&#@][\w-]+`)

// ExtractTargets scans free text for notification directives. Only lines
// whose trimmed form contains "notify" or "notification" (case-insensitive)
// are scanned for tokens; matches keep their original case and come back in
// first-seen order, top to bottom, with exact duplicates dropped. Dedup is
// deliberately case-sensitive: channel and user names are identifiers, so
// &General and &general stay distinct targets.
func ExtractTargets(text string) []string {
	if text == "" {
		return nil
	}

	var targets []string
	seen := make(map[string]struct{})

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if !strings.Contains(trimmed, "notify") && !strings.Contains(trimmed, "notification") {
			continue
		}
		for _, token := range targetPattern.FindAllString(line, -1) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			targets = append(targets, token)
		}
	}
	return targets
}
