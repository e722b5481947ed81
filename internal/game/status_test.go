package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "LOBBY", StatusLobby.String())
	assert.Equal(t, "PLAYING", StatusPlaying.String())
	assert.Equal(t, "ROUND_END", StatusRoundEnd.String())
	assert.Equal(t, "GAME_END", StatusGameEnd.String())
}

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusLobby, StatusPlaying, true},
		{StatusLobby, StatusGameEnd, false},
		{StatusPlaying, StatusRoundEnd, true},
		{StatusPlaying, StatusGameEnd, true},
		{StatusPlaying, StatusLobby, true}, // host reset mid-game
		{StatusRoundEnd, StatusPlaying, true},
		{StatusRoundEnd, StatusGameEnd, true},
		{StatusGameEnd, StatusLobby, true},
		{StatusGameEnd, StatusPlaying, false},
	}
	for _, tC := range testCases {
		t.Run(tC.from.String()+"->"+tC.to.String(), func(t *testing.T) {
			assert.Equal(t, tC.ok, tC.from.CanTransition(tC.to))
		})
	}
}
