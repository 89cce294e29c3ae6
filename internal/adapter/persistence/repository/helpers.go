package repository

import "os"

// Table names default to the local dev fixtures; each deployment overrides
// them through the *_TABLE environment variables read here.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
