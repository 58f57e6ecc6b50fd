package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMove_FirstWordAlwaysLegal(t *testing.T) {
	word, verdict := validateMove("", map[string]struct{}{}, "Moscow")
	assert.Equal(t, VerdictAccept, verdict)
	assert.Equal(t, "moscow", word)
}

func TestValidateMove_NormalizesInput(t *testing.T) {
	word, verdict := validateMove("", map[string]struct{}{}, "  OsLo  ")
	assert.Equal(t, VerdictAccept, verdict)
	assert.Equal(t, "oslo", word)
}

func TestValidateMove_WrongLetter(t *testing.T) {
	_, verdict := validateMove("oslo", map[string]struct{}{"oslo": {}}, "rome")
	assert.Equal(t, VerdictWrongLetter, verdict)
}

func TestValidateMove_ChainsOnLastLetter(t *testing.T) {
	word, verdict := validateMove("oslo", map[string]struct{}{"oslo": {}}, "Oklahoma")
	assert.Equal(t, VerdictAccept, verdict)
	assert.Equal(t, "oklahoma", word)
}

func TestValidateMove_AlreadyUsedAnyCase(t *testing.T) {
	used := map[string]struct{}{"paris": {}}
	_, verdict := validateMove("paris", used, "PARIS")
	assert.Equal(t, VerdictAlreadyUsed, verdict)
}

func TestValidateMove_ExitSignalsQuit(t *testing.T) {
	_, verdict := validateMove("oslo", map[string]struct{}{}, "Exit")
	assert.Equal(t, VerdictQuit, verdict)
}

func TestValidateMove_EmptyRejected(t *testing.T) {
	_, verdict := validateMove("", map[string]struct{}{}, "   ")
	assert.Equal(t, VerdictWrongLetter, verdict)
}

func TestValidateMove_CyrillicChaining(t *testing.T) {
	used := map[string]struct{}{"москва": {}}

	word, verdict := validateMove("москва", used, "Астрахань")
	assert.Equal(t, VerdictAccept, verdict)
	assert.Equal(t, "астрахань", word)

	_, verdict = validateMove("москва", used, "Тула")
	assert.Equal(t, VerdictWrongLetter, verdict)
}
