package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_NormalizeFillsDefaults(t *testing.T) {
	s := Settings{}
	require.NoError(t, s.Normalize())
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettings_NormalizeRejectsBadValues(t *testing.T) {
	testCases := []struct {
		desc  string
		patch func(*Settings)
	}{
		{desc: "one player room", patch: func(s *Settings) { s.MaxPlayers = 1 }},
		{desc: "too many players", patch: func(s *Settings) { s.MaxPlayers = 64 }},
		{desc: "negative rounds", patch: func(s *Settings) { s.Rounds = -1 }},
		{desc: "draw time too short", patch: func(s *Settings) { s.DrawTime = 3 }},
		{desc: "unknown mode", patch: func(s *Settings) { s.GameMode = "SPEEDRUN" }},
		{desc: "custom mode without words", patch: func(s *Settings) { s.GameMode = ModeCustom }},
		{desc: "custom mode with only blank words", patch: func(s *Settings) {
			s.GameMode = ModeCustom
			s.CustomWords = []string{"  ", ""}
		}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			s := DefaultSettings()
			tC.patch(&s)
			assert.ErrorIs(t, s.Normalize(), ErrInvalidAction)
		})
	}
}

func TestSettings_NormalizeTrimsCustomWords(t *testing.T) {
	s := DefaultSettings()
	s.GameMode = ModeCustom
	s.CustomWords = []string{" pizza ", "", "robot"}

	require.NoError(t, s.Normalize())
	assert.Equal(t, []string{"pizza", "robot"}, s.CustomWords)
}
