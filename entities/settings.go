package entities

import (
	"sort"
	"strconv"
	"strings"
)

func settingFloat(settings map[string]string, key string, def float64) float64 {
	v, ok := settings[key]
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func settingBool(settings map[string]string, key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(settings[key]))
	return b
}

// settingList collects the values of prefix.1, prefix.2 ... in key order.
func settingList(settings map[string]string, prefix string) []string {
	type entry struct {
		n int
		v string
	}
	var entries []entry
	for k, v := range settings {
		rest, ok := strings.CutPrefix(k, prefix+".")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		entries = append(entries, entry{n, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].n < entries[j].n })

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.v
	}
	return out
}
