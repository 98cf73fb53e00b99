package args

import (
	"fmt"
	"strings"
)

// Transform runs an inline Lua snippet over an already normalized argument
// list. The snippet sees the list as the global `args` and must produce a
// table of strings. An empty snippet is a passthrough. Expressions without an
// explicit return are wrapped, matching the config's inline conventions.
func Transform(code string, list []string) ([]string, error) {
	if strings.TrimSpace(code) == "" {
		return list, nil
	}
	if !strings.Contains(code, "return") {
		code = "return (" + code + ")"
	}

	ret, err := runSandboxed(code, map[string]any{"args": list}, defaultTimeoutMs)
	if err != nil {
		return nil, fmt.Errorf("args transform: %v", err)
	}
	arr, ok := ret.([]any)
	if !ok {
		return nil, fmt.Errorf("args transform: script must return a list of strings")
	}
	out := make([]string, 0, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("args transform: element %d is not a string", i+1)
		}
		out = append(out, s)
	}
	return out, nil
}
