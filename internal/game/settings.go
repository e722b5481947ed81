package game

import "strings"

type GameMode string

const (
	ModeClassic    GameMode = "CLASSIC"
	ModeAnimals    GameMode = "ANIMALS"
	ModeFood       GameMode = "FOOD"
	ModePopCulture GameMode = "POP_CULTURE"
	ModeHard       GameMode = "HARD"
	ModeCustom     GameMode = "CUSTOM"
)

// Settings configures one room. Immutable once the game starts.
type Settings struct {
	MaxPlayers     int      `json:"maxPlayers"`
	Rounds         int      `json:"rounds"`
	DrawTime       int      `json:"drawTime"`
	HintReveals    int      `json:"hintReveals"`
	Language       string   `json:"language"`
	GameMode       GameMode `json:"gameMode"`
	WordChoices    int      `json:"wordChoices"`
	AllowProfanity bool     `json:"allowProfanity"`
	PrivateRoom    bool     `json:"privateRoom"`
	CustomWords    []string `json:"customWords,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxPlayers:     8,
		Rounds:         3,
		DrawTime:       80,
		HintReveals:    2,
		Language:       "English",
		GameMode:       ModeClassic,
		WordChoices:    3,
		AllowProfanity: false,
		PrivateRoom:    true,
	}
}

var validModes = map[GameMode]bool{
	ModeClassic:    true,
	ModeAnimals:    true,
	ModeFood:       true,
	ModePopCulture: true,
	ModeHard:       true,
	ModeCustom:     true,
}

// Normalize fills zero values with defaults and clamps the rest into sane
// ranges. Returns ErrInvalidAction when the payload can't be repaired.
func (s *Settings) Normalize() error {
	def := DefaultSettings()

	if s.MaxPlayers == 0 {
		s.MaxPlayers = def.MaxPlayers
	}
	if s.Rounds == 0 {
		s.Rounds = def.Rounds
	}
	if s.DrawTime == 0 {
		s.DrawTime = def.DrawTime
	}
	if s.HintReveals == 0 {
		s.HintReveals = def.HintReveals
	}
	if s.WordChoices == 0 {
		s.WordChoices = def.WordChoices
	}
	if s.Language == "" {
		s.Language = def.Language
	}
	if s.GameMode == "" {
		s.GameMode = def.GameMode
	}

	if s.MaxPlayers < 2 || s.MaxPlayers > 16 {
		return ErrInvalidAction
	}
	if s.Rounds < 1 || s.Rounds > 10 {
		return ErrInvalidAction
	}
	if s.DrawTime < 10 || s.DrawTime > 300 {
		return ErrInvalidAction
	}
	if s.WordChoices < 1 || s.WordChoices > 5 {
		return ErrInvalidAction
	}
	if !validModes[s.GameMode] {
		return ErrInvalidAction
	}
	if s.GameMode == ModeCustom && len(s.CustomWords) == 0 {
		return ErrInvalidAction
	}

	words := s.CustomWords[:0]
	for _, w := range s.CustomWords {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	s.CustomWords = words
	if s.GameMode == ModeCustom && len(s.CustomWords) == 0 {
		return ErrInvalidAction
	}
	return nil
}
