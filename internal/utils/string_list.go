package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseStringList decodes a JSON array column such as departments.services
func ParseStringList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return []string{}, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to parse string list: %w", err)
	}
	return items, nil
}

// FormatStringList encodes items as a JSON array, dropping blanks
func FormatStringList(items []string) (string, error) {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			clean = append(clean, it)
		}
	}
	if len(clean) == 0 {
		return "[]", nil
	}

	b, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("failed to format string list: %w", err)
	}
	return string(b), nil
}
