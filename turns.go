package main

import "strings"

// Verdict is the outcome of validating a single move.
type Verdict int

const (
	VerdictAccept Verdict = iota
	VerdictAlreadyUsed
	VerdictWrongLetter
	VerdictQuit
)

// validateMove checks one raw move against the word-chain rules and returns
// the normalized word alongside the verdict. It performs no I/O and mutates
// nothing; on VerdictAccept the caller records the word, updates the chain
// and awards the point.
//
// Rules: the word is lower-cased and trimmed; "exit" signals a quit; a word
// already played this game is rejected; otherwise the word's first rune must
// match the previous word's last rune (any word is legal when the chain is
// empty). No dictionary or length checks are performed.
func validateMove(lastWord string, used map[string]struct{}, raw string) (string, Verdict) {
	word := strings.ToLower(strings.TrimSpace(raw))

	if word == cmdExit {
		return word, VerdictQuit
	}

	if word == "" {
		return word, VerdictWrongLetter
	}

	if _, ok := used[word]; ok {
		return word, VerdictAlreadyUsed
	}

	if lastWord != "" && firstRune(word) != lastRune(lastWord) {
		return word, VerdictWrongLetter
	}

	return word, VerdictAccept
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
