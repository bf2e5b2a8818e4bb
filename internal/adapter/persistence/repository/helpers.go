package repository

import (
	"os"
	"sort"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// sortByDisplayName orders reference rows the way the operator screens list them.
func sortByDisplayName[T any](rows []T, name func(T) string) {
	sort.SliceStable(rows, func(i, j int) bool { return name(rows[i]) < name(rows[j]) })
}
