package catalogmanager

import (
	"encoding/json"
	"strings"
)

// StringList is a set-like sequence of non-empty strings. It accepts
// either a JSON array of strings or a single comma-separated string,
// which the admin forms submit. Entries are trimmed, empties dropped,
// and duplicates removed while preserving order.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = normalizeList(arr)
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = normalizeList(strings.Split(str, ","))
	return nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
