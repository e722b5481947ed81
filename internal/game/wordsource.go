package game

import (
	"math/rand"

	"github.com/hits313/skribb-masti/internal/words"
)

// WordSource picks the secret word for a turn.
type WordSource interface {
	RandomWord(s Settings) string
}

type bankSource struct {
	bank *words.Bank
}

// NewBankSource adapts a word bank to the session settings: custom rooms
// draw from their own list, everything else goes through the tier mapping.
func NewBankSource(b *words.Bank) WordSource {
	return bankSource{bank: b}
}

func (bs bankSource) RandomWord(s Settings) string {
	if s.GameMode == ModeCustom && len(s.CustomWords) > 0 {
		return s.CustomWords[rand.Intn(len(s.CustomWords))]
	}
	return bs.bank.RandomWord(words.TierForMode(string(s.GameMode)))
}
