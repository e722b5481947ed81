package game

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const drawerBonus = 20

// RoundEngine drives one active game turn by turn: drawer rotation, the
// countdown, hint reveals, guess arbitration, and scoring. It exists only
// while the session status is PLAYING and all of its methods assume the
// session lock is held.
type RoundEngine struct {
	session *Session
	words   WordSource

	secretWord string
	timeLeft   int
	revealed   map[int]struct{}
	timer      *turnTimer
}

// turnTimer is the single scheduled-task handle an engine may own. Stopping
// is idempotent; a tick that raced a stop re-checks ownership under the
// session lock before touching any state.
type turnTimer struct {
	stop     chan struct{}
	stopOnce sync.Once
}

func newRoundEngine(s *Session, words WordSource) *RoundEngine {
	return &RoundEngine{
		session:  s,
		words:    words,
		revealed: make(map[int]struct{}),
	}
}

// startTurn selects the next drawer round-robin, resets per-turn state,
// picks the secret word, and arms the countdown.
func (e *RoundEngine) startTurn() {
	s := e.session

	e.revealed = make(map[int]struct{})
	for _, p := range s.players {
		p.HasGuessed = false
		p.IsDrawing = false
	}

	if len(s.players) == 0 {
		e.endGame()
		return
	}

	s.status = StatusPlaying
	drawer := s.players[(s.currentRound-1)%len(s.players)]
	drawer.IsDrawing = true
	s.currentDrawerID = drawer.ID

	e.secretWord = e.words.RandomWord(s.settings)
	e.timeLeft = s.settings.DrawTime
	s.log.Info().Int("round", s.currentRound).Str("drawer", drawer.Name).Msg("turn started")

	s.gateway.Broadcast(s.id, EventStateUpdated, s.publicStateLocked())
	s.gateway.Unicast(drawer.ConnID, EventYourTurn, e.secretWord)

	e.startTimer()
}

func (e *RoundEngine) startTimer() {
	e.stopTimer()
	t := &turnTimer{stop: make(chan struct{})}
	e.timer = t
	go e.runTimer(t)
}

func (e *RoundEngine) runTimer(t *turnTimer) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			s := e.session
			s.mu.Lock()
			if s.engine != e || e.timer != t {
				s.mu.Unlock()
				return
			}
			e.tick()
			s.mu.Unlock()
		}
	}
}

func (e *RoundEngine) stopTimer() {
	if e.timer == nil {
		return
	}
	t := e.timer
	e.timer = nil
	t.stopOnce.Do(func() { close(t.stop) })
}

// tick advances the countdown by one second: broadcast the remaining time,
// reveal a hint at the 50% and 25% marks, end the turn at zero. The hint
// thresholds come from the configured draw time, never a moving total.
func (e *RoundEngine) tick() {
	s := e.session

	e.timeLeft--
	s.gateway.Broadcast(s.id, EventTimer, e.timeLeft)

	total := s.settings.DrawTime
	if e.timeLeft == total*50/100 || e.timeLeft == total*25/100 {
		e.revealHint()
	}

	if e.timeLeft <= 0 {
		e.endTurn()
	}
}

// revealHint discloses one more character position, chosen uniformly among
// the unrevealed non-space indices. No-op when nothing is left to reveal.
func (e *RoundEngine) revealHint() {
	s := e.session

	word := []rune(e.secretWord)
	unrevealed := make([]int, 0, len(word))
	for i, r := range word {
		if _, ok := e.revealed[i]; !ok && r != ' ' {
			unrevealed = append(unrevealed, i)
		}
	}
	if len(unrevealed) == 0 {
		return
	}

	e.revealed[unrevealed[rand.Intn(len(unrevealed))]] = struct{}{}
	s.gateway.Broadcast(s.id, EventStateUpdated, s.publicStateLocked())
}

// maskedWord renders the hint string: revealed characters followed by a
// space, underscores for hidden ones, a double space at word boundaries.
func (e *RoundEngine) maskedWord() string {
	var b strings.Builder
	for i, r := range []rune(e.secretWord) {
		switch {
		case r == ' ':
			b.WriteString("  ")
		case e.isRevealed(i):
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteString("_ ")
		}
	}
	return b.String()
}

func (e *RoundEngine) isRevealed(i int) bool {
	_, ok := e.revealed[i]
	return ok
}

// handleGuess arbitrates one submission. The drawer, unknown players, and
// players who already guessed are no-ops. A correct guess pays the guesser
// by remaining time (floor 10, ceiling 100) and the drawer a flat bonus,
// then ends the turn early once every other player has guessed.
func (e *RoundEngine) handleGuess(playerID, text string) bool {
	s := e.session

	if playerID == s.currentDrawerID {
		return false
	}
	player := s.playerByIDLocked(playerID)
	if player == nil || player.HasGuessed {
		return false
	}

	if !strings.EqualFold(strings.TrimSpace(text), e.secretWord) {
		return false
	}

	player.HasGuessed = true
	points := 100 * e.timeLeft / s.settings.DrawTime
	if points < 10 {
		points = 10
	}
	player.Score += points

	if drawer := s.playerByIDLocked(s.currentDrawerID); drawer != nil {
		drawer.Score += drawerBonus
	}
	s.log.Info().Str("player", player.Name).Int("points", points).Msg("correct guess")

	s.gateway.Broadcast(s.id, EventStateUpdated, s.publicStateLocked())
	e.checkAllGuessed()
	return true
}

// handlePlayerLeave reacts to a member that is already gone from the
// player list: the round cannot continue without its drawer, and a smaller
// guesser set may now be vacuously complete.
func (e *RoundEngine) handlePlayerLeave(playerID string) {
	if e.session.status != StatusPlaying {
		return
	}
	if playerID == e.session.currentDrawerID {
		e.endTurn()
		return
	}
	e.checkAllGuessed()
}

func (e *RoundEngine) checkAllGuessed() {
	s := e.session

	guessers := 0
	for _, p := range s.players {
		if p.ID == s.currentDrawerID {
			continue
		}
		if !p.HasGuessed {
			return
		}
		guessers++
	}
	if guessers > 0 {
		e.endTurn()
	}
}

// endTurn stops the countdown and either re-enters startTurn or, when the
// round counter has exceeded rounds x player count, finishes the game.
func (e *RoundEngine) endTurn() {
	s := e.session

	e.stopTimer()
	if s.status.CanTransition(StatusRoundEnd) {
		s.status = StatusRoundEnd
	}

	s.currentRound++
	if s.currentRound > s.settings.Rounds*len(s.players) {
		e.endGame()
		return
	}
	e.startTurn()
}

func (e *RoundEngine) endGame() {
	s := e.session

	e.stopTimer()
	s.status = StatusGameEnd
	s.currentDrawerID = ""
	for _, p := range s.players {
		p.IsDrawing = false
	}
	s.log.Info().Msg("game ended")
	s.gateway.Broadcast(s.id, EventStateUpdated, s.publicStateLocked())
}
