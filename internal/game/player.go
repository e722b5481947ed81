package game

// Player is one room member. The server-assigned ID is stable for the
// player's lifetime; ConnID identifies the transport connection and is
// never sent to other players.
type Player struct {
	ID          string `json:"id"`
	ConnID      string `json:"-"`
	Name        string `json:"username"`
	Avatar      string `json:"avatar"`
	Score       int    `json:"score"`
	IsHost      bool   `json:"isHost"`
	IsConnected bool   `json:"isConnected"`
	IsDrawing   bool   `json:"isDrawing"`
	HasGuessed  bool   `json:"hasGuessed"`
}
