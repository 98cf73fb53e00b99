package args

import "strings"

// Normalize turns a raw argument vector into the demo's working list: the
// leading program name is dropped, blank entries are removed and the rest is
// uppercased, preserving order. Total for any input, including an empty one.
func Normalize(argv []string) []string {
	if len(argv) <= 1 {
		return []string{}
	}
	out := make([]string, 0, len(argv)-1)
	for _, a := range argv[1:] {
		if strings.TrimSpace(a) == "" {
			continue
		}
		out = append(out, strings.ToUpper(a))
	}
	return out
}
