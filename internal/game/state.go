package game

import (
	"time"

	"github.com/google/uuid"
)

// RoomState is the projection of a session that is safe to broadcast to
// every member. It never carries the secret word; the drawer receives that
// through a separate unicast.
type RoomState struct {
	ID              string   `json:"id"`
	Status          string   `json:"status"`
	Players         []Player `json:"players"`
	Settings        Settings `json:"settings"`
	CurrentRound    int      `json:"currentRound"`
	TotalRounds     int      `json:"totalRounds"`
	CurrentDrawerID string   `json:"currentDrawerId"`
	TimeLeft        int      `json:"timeLeft"`
	WordBlanks      string   `json:"wordBlanks"`
}

type ChatKind string

const (
	ChatPlain  ChatKind = "CHAT"
	ChatSystem ChatKind = "SYSTEM"
	ChatGuess  ChatKind = "GUESS"
)

type ChatMessage struct {
	ID        string   `json:"id"`
	PlayerID  string   `json:"playerId"`
	Username  string   `json:"username"`
	Avatar    string   `json:"avatar"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
	Kind      ChatKind `json:"type"`
}

// NewChatMessage builds a plain chat message from a player. Callers flip
// the kind and text when the message turned out to be a correct guess.
func NewChatMessage(p *Player, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		PlayerID:  p.ID,
		Username:  p.Name,
		Avatar:    p.Avatar,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
		Kind:      ChatPlain,
	}
}
