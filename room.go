package main

import (
	"errors"
	"sync"
	"time"
)

// Phase is a room's coarse game state.
type Phase int

const (
	WaitingForPlayers Phase = iota
	InProgress
	GameOver
)

const minPlayers = 2

var (
	// errStateChanged wakes a runner whose wait condition no longer holds:
	// the prompted player left, the turn changed, or the room went short.
	errStateChanged = errors.New("room state changed")
	errMoveTimeout  = errors.New("move timed out")
)

type member struct {
	session SessionChannel
	name    string
}

type pendingMove struct {
	session SessionChannel
	word    string
}

// Room owns the membership, turn order, word history, scores and
// synchronization state for one game. All mutable fields are guarded by mu;
// cond is broadcast by every mutation that could satisfy a waiter (a join,
// a leave, or a submitted move), and waiters re-check their condition after
// waking.
type Room struct {
	name string

	mu   sync.Mutex
	cond *sync.Cond

	members   []member
	banned    map[string]struct{}
	usedWords map[string]struct{}
	lastWord  string
	scores    map[string]int
	phase     Phase

	runnerActive bool
	closed       bool
	pending      *pendingMove
	lastActive   time.Time
}

func newRoom(name string) *Room {
	r := &Room{
		name:       name,
		banned:     make(map[string]struct{}),
		usedWords:  make(map[string]struct{}),
		scores:     make(map[string]int),
		phase:      WaitingForPlayers,
		lastActive: time.Now(),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

func (r *Room) Name() string {
	return r.name
}

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Join appends the session to the turn order, seeds its score and notifies
// the room. The returned bool is true only for the join that crossed the
// room to enough players while no runner was active; that caller, and no
// other, spawns the game runner.
func (r *Room) Join(session SessionChannel, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, ErrRoomNotFound
	}
	if _, ok := r.banned[name]; ok {
		return false, ErrBanned
	}

	r.members = append(r.members, member{session: session, name: name})
	r.scores[name] = 0
	r.lastActive = time.Now()

	r.broadcastLocked(msgNotice(textJoined(name, r.name)))

	if len(r.members) >= minPlayers && r.phase == WaitingForPlayers {
		r.phase = InProgress
	}

	start := false
	if len(r.members) >= minPlayers && !r.runnerActive {
		r.runnerActive = true
		start = true
	}

	r.cond.Broadcast()

	return start, nil
}

// Leave removes the session from the room, if present. When the departure
// would leave a running game short-handed, the game is ended first, so the
// final score table still includes the departing player.
func (r *Room) Leave(session SessionChannel, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, m := range r.members {
		if m.session == session {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	if r.phase == InProgress && len(r.members)-1 < minPlayers {
		r.broadcastLocked(msgNotice(textInsufficient))
		r.gameOverLocked()
	}

	r.members = append(r.members[:idx], r.members[idx+1:]...)
	delete(r.scores, name)
	if r.pending != nil && r.pending.session == session {
		r.pending = nil
	}
	r.lastActive = time.Now()

	r.broadcastLocked(msgNotice(textLeft(name, r.name)))
	r.cond.Broadcast()
}

// Ban blocks a display name from future joins. Current members with that
// name are unaffected until they leave.
func (r *Room) Ban(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.banned[name] = struct{}{}
}

// Broadcast delivers the message to every current member, best-effort: a
// failed delivery to one member never blocks the others, and a dead
// connection is cleaned up by its own session handler, not here.
func (r *Room) Broadcast(msg any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcastLocked(msg)
}

func (r *Room) broadcastLocked(msg any) {
	for _, m := range r.members {
		_ = m.session.Send(msg)
	}
}

// CurrentPlayer returns the member whose turn it is.
func (r *Room) CurrentPlayer() (SessionChannel, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) == 0 {
		return nil, "", false
	}
	return r.members[0].session, r.members[0].name, true
}

// advanceTurnLocked rotates the front member to the back.
func (r *Room) advanceTurnLocked() {
	if len(r.members) < minPlayers {
		return
	}
	r.members = append(r.members[1:], r.members[0])
}

// SubmitMove stores a move from the current player and wakes the runner.
// Moves from anyone else are rejected without disturbing the turn.
func (r *Room) SubmitMove(session SessionChannel, word string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != InProgress || len(r.members) == 0 || r.members[0].session != session {
		return ErrNotYourTurn
	}

	r.pending = &pendingMove{session: session, word: word}
	r.lastActive = time.Now()
	r.cond.Broadcast()

	return nil
}

// awaitPlayers blocks until the room has enough members to play,
// broadcasting a waiting notice each time it checks and comes up short.
// It reports false when the room was closed instead.
func (r *Room) awaitPlayers() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for len(r.members) < minPlayers && !r.closed {
		r.broadcastLocked(msgNotice(textWaiting))
		r.cond.Wait()
	}
	return !r.closed
}

// promptCurrent sends a turn prompt to the front member and identifies it
// to the caller. It reports false when the game can no longer continue.
func (r *Room) promptCurrent() (SessionChannel, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != InProgress || len(r.members) < minPlayers {
		return nil, "", false
	}

	m := r.members[0]
	_ = m.session.Send(msgTurnPrompt())
	return m.session, m.name, true
}

// awaitMove blocks until the prompted session submits a move. It returns
// errStateChanged when the wait no longer applies (the player left, the
// turn changed or the game ended) and errMoveTimeout when a positive
// timeout elapses first.
func (r *Room) awaitMove(of SessionChannel, timeout time.Duration) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
		timer := time.AfterFunc(timeout, r.cond.Broadcast)
		defer timer.Stop()
	}

	for {
		if r.closed || r.phase != InProgress || len(r.members) < minPlayers || r.members[0].session != of {
			return "", errStateChanged
		}
		if r.pending != nil && r.pending.session == of {
			word := r.pending.word
			r.pending = nil
			return word, nil
		}
		if timeout > 0 && !time.Now().Before(deadline) {
			return "", errMoveTimeout
		}
		r.cond.Wait()
	}
}

// playWord validates one move and, when accepted, records the word, awards
// the point, announces the result and rotates the turn, all atomically.
func (r *Room) playWord(session SessionChannel, name, raw string) Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()

	word, verdict := validateMove(r.lastWord, r.usedWords, raw)
	if verdict != VerdictAccept {
		return verdict
	}

	if r.phase != InProgress || len(r.members) == 0 || r.members[0].session != session {
		// The mover lost the turn between submitting and validation.
		return VerdictWrongLetter
	}

	r.usedWords[word] = struct{}{}
	r.lastWord = word
	r.scores[name]++
	r.lastActive = time.Now()

	r.broadcastLocked(msgMoveAccepted(name, word, r.scores[name]))
	r.advanceTurnLocked()

	return VerdictAccept
}

// endGame ends a short-handed game, if one is still marked in progress.
// Normally the decisive Leave has already done this.
func (r *Room) endGame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != InProgress {
		return
	}
	r.broadcastLocked(msgNotice(textInsufficient))
	r.gameOverLocked()
}

// gameOverLocked broadcasts the results and recycles the room for the next
// game: word history and chain are cleared, scores are kept per member.
func (r *Room) gameOverLocked() {
	r.phase = GameOver

	r.broadcastLocked(msgNotice(textGameOver))

	scores := make([]PlayerScore, 0, len(r.members))
	for _, m := range r.members {
		scores = append(scores, PlayerScore{Name: m.name, Points: r.scores[m.name]})
	}
	r.broadcastLocked(msgScoreboard(scores))

	r.usedWords = make(map[string]struct{})
	r.lastWord = ""
	r.pending = nil
	r.phase = WaitingForPlayers
	r.lastActive = time.Now()
}

// retireRunner releases the runner slot. It reports false when the room
// refilled before the runner could exit, in which case the caller keeps
// running and starts the next game itself.
func (r *Room) retireRunner() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.members) >= minPlayers && !r.closed {
		if r.phase == WaitingForPlayers {
			r.phase = InProgress
		}
		return false
	}

	r.runnerActive = false
	return true
}

// close marks the room dead and wakes any waiting runner so it can retire.
// Called by the registry when reaping; the room must already be empty.
func (r *Room) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.cond.Broadcast()
}

// idleState reports the member count and last activity, for the reaper.
func (r *Room) idleState() (int, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members), r.lastActive
}
