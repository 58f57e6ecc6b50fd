package main

import (
	"errors"
)

// runGame drives one room's game loop: one goroutine per active room,
// spawned by the join that filled the room (Room.Join guarantees at most
// one). It keeps running back-to-back games for as long as the room refills
// before it can retire.
func runGame(cfg *Config, room *Room) {
	if !room.awaitPlayers() {
		room.retireRunner()
		return
	}

	for {
		room.Broadcast(msgNotice(textGameStart))
		logf(cfg, "GAMES: Game started in room %q", room.Name())

		runTurns(cfg, room)

		logf(cfg, "GAMES: Game ended in room %q", room.Name())

		if room.retireRunner() {
			return
		}
	}
}

// runTurns plays a single game to completion: prompt the current player,
// wait for their move, validate and apply it, rotate on acceptance, retry
// the same player on rejection, drop the player on quit or timeout.
func runTurns(cfg *Config, room *Room) {
	for {
		session, name, ok := room.promptCurrent()
		if !ok {
			// The decisive Leave normally ends the game itself; this
			// covers a game going short before the first prompt.
			room.endGame()
			return
		}

		raw, err := room.awaitMove(session, cfg.moveTimeout)
		switch {
		case errors.Is(err, errStateChanged):
			if room.Phase() != InProgress {
				return
			}
			continue
		case errors.Is(err, errMoveTimeout):
			logf(cfg, "GAMES: Dropping stalled player %q from room %q", name, room.Name())
			room.Broadcast(msgNotice(textTimedOut(name)))
			room.Leave(session, name)
			_ = session.Close()
			continue
		}

		switch room.playWord(session, name, raw) {
		case VerdictQuit:
			room.Leave(session, name)
			_ = session.Close()
		case VerdictAlreadyUsed:
			_ = session.Send(msgMoveRejected("already_used", textAlreadyUsed))
		case VerdictWrongLetter:
			_ = session.Send(msgMoveRejected("wrong_letter", textWrongLetter))
		case VerdictAccept:
			// playWord broadcast the move and advanced the turn.
		}
	}
}
