// Package match provides fuzzy matching of key labels.
//
// It is used to attach "did you mean" suggestions to untranslated keys:
// labels are normalized (case-folded, separators and the KC_ prefix removed)
// and ranked by normalized Levenshtein similarity.
package match
