// Package i18n holds the translation port used when persisting provider data.
package i18n

import (
	"context"
	"strings"
)

// Dictionary maps a source string to its translation.
type Dictionary map[string]string

// Get returns the translation of source or "" when none is known.
func (d Dictionary) Get(source string) string {
	key := strings.TrimSpace(source)
	if key == "" || d == nil {
		return ""
	}
	return d[key]
}

// Translator turns a batch of source strings into a Dictionary.
type Translator interface {
	Translate(ctx context.Context, texts []string) (Dictionary, error)
}

// Nop never translates; localized fields stay empty.
type Nop struct{}

func (Nop) Translate(context.Context, []string) (Dictionary, error) {
	return Dictionary{}, nil
}

// Unique trims, drops blanks and de-duplicates texts while keeping first-seen order.
func Unique(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		key := strings.TrimSpace(text)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
