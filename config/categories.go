// SPDX-License-Identifier: MIT
// categories.go — parses Options.Categories' "a-b-p" strings into a
// score.CategoryRegistry.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidnlp/yasa/score"
)

// parseCategories builds a score.CategoryRegistry from entries, each in
// "sourceLen-targetLen-probability" form (e.g. "1-1-0.89").
//
// Errors:
//   - ErrMalformedCategory if any entry does not parse.
func parseCategories(entries []string) (*score.CategoryRegistry, error) {
	registry := score.NewCategoryRegistry()
	for _, entry := range entries {
		fields := strings.Split(entry, "-")
		if len(fields) != 3 {
			return nil, fmt.Errorf("config: entry %q: %w", entry, ErrMalformedCategory)
		}
		sourceLen, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("config: entry %q: %w", entry, ErrMalformedCategory)
		}
		targetLen, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("config: entry %q: %w", entry, ErrMalformedCategory)
		}
		probability, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("config: entry %q: %w", entry, ErrMalformedCategory)
		}
		registry.Add(sourceLen, targetLen, probability)
	}
	return registry, nil
}
