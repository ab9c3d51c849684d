// Package user normalizes self-asserted display names into the canonical
// forms used for per-user file paths and the username log.
package user

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and title-cases each word, so that
// "  asha rao " and "Asha Rao" identify the same user.
func Normalize(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

// Slug derives the filesystem-safe form of a username: lowercased, with
// spaces replaced by underscores. Per-user files are named after it.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
