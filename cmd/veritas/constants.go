package main

// Valid output formats for CLI commands.
var validFormats = []string{"text", "json"}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
