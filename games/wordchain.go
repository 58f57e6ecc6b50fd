// Players connect, give a display name, and organize into named rooms
// Each room hosts one game at a time: players take turns naming a word
// Every word must start with the last letter of the previous word
// A word already played this game is rejected; the same player retries
// Each accepted word is worth one point
// The game runs until the room drops below two players, then the score table is broadcast
// Rooms are recycled after a game: word history resets, members and scores stay

// Commands (sent as plain text over the websocket):
// - список — list rooms
// - создать <name> — create a room
// - присоединиться <name> — join a room
// - перейти <name> — switch to another room
// - ban <name> — ban a display name from the current room
// - exit — disconnect
// Anything else sent while in a room is a move

// Implementation details:
// - One goroutine per client session, one per active room's game loop
// - A room's game loop starts when the second player joins, exactly once
// - Broadcasts are best-effort; a dead client is cleaned up by its own session
// - Bans apply to display names at join time, not to current members
package games
