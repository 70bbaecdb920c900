// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identifier

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CodeLength is the number of symbols in a display code.
const CodeLength = 8

// Ambiguous glyphs are remapped so printed or spoken codes are unambiguous.
var glyphReplacer = strings.NewReplacer(
	"I", "A",
	"O", "B",
	"1", "C",
	"0", "D",
)

// DisplayCode derives the public code for a puzzle from its serialized
// content: the first 8 hex characters of SHA-256, uppercased, with
// I, O, 1 and 0 substituted. The same content always yields the same code.
func DisplayCode(puzzleJSON string) string {
	sum := sha256.Sum256([]byte(puzzleJSON))
	prefix := strings.ToUpper(hex.EncodeToString(sum[:])[:CodeLength])
	return glyphReplacer.Replace(prefix)
}

// NormalizeCode upper-cases user-supplied codes and applies the same glyph
// substitution, so "ba7816bf" and "BA78C6BF" look up the same puzzle.
func NormalizeCode(code string) string {
	return glyphReplacer.Replace(strings.ToUpper(strings.TrimSpace(code)))
}
