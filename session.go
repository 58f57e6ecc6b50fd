package main

import (
	"errors"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// SessionChannel abstracts one client's duplex message stream. Send must
// never block: a full buffer or a closed channel fails fast and the failure
// is the sender's to ignore. Receive blocks until the next inbound message
// or a transport error, which the session loop treats as an implicit exit.
type SessionChannel interface {
	Send(msg any) error
	Receive() (string, error)
	Close() error
}

// wsChannel adapts a websocket connection to SessionChannel. Outbound
// messages go through a buffered channel drained by writePump, so many
// goroutines (room broadcasts, the runner, the session loop) can send
// without coordinating; only the session goroutine calls Receive.
type wsChannel struct {
	conn *websocket.Conn
	send chan any

	mu     sync.Mutex
	closed bool
}

func newWSChannel(conn *websocket.Conn) *wsChannel {
	return &wsChannel{
		conn: conn,
		send: make(chan any, 16),
	}
}

func (c *wsChannel) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *wsChannel) Send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrChannelClosed
	}

	select {
	case c.send <- msg:
		return nil
	default:
		return ErrSendBlocked
	}
}

func (c *wsChannel) Receive() (string, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *wsChannel) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()

	return c.conn.Close()
}

// ClientSession is the server-side handle for one connected client: its
// display name, its channel, and the room it currently occupies, if any.
// Only the session goroutine touches the room pointer; the runner may
// remove the session from a room's membership, but Leave is idempotent so
// the stale pointer is harmless.
type ClientSession struct {
	cfg      *Config
	registry *RoomRegistry
	channel  SessionChannel
	name     string
	room     *Room
}

// handleSession runs one client's command loop: read the display name,
// then dispatch one command per message until the client exits or the
// connection dies. A read error anywhere is an implicit exit; the failure
// never reaches other sessions beyond the usual leave notice.
func handleSession(cfg *Config, registry *RoomRegistry, channel SessionChannel) {
	s := &ClientSession{
		cfg:      cfg,
		registry: registry,
		channel:  channel,
	}
	defer s.close()

	login, err := channel.Receive()
	if err != nil {
		return
	}
	s.name = strings.TrimSpace(login)
	if s.name == "" {
		return
	}

	_ = channel.Send(msgNotice(textWelcome))
	logf(cfg, "GAMES: Player %q connected", s.name)

	for {
		line, err := channel.Receive()
		if err != nil {
			logf(cfg, "GAMES: Player %q disconnected: %v", s.name, err)
			return
		}
		if !s.dispatch(strings.TrimSpace(line)) {
			return
		}
	}
}

// dispatch interprets one inbound line. Commands are recognized in any
// case; everything else is a move for the session's current room. It
// reports false when the session should end.
func (s *ClientSession) dispatch(line string) bool {
	lower := strings.ToLower(line)

	switch {
	case lower == cmdList:
		_ = s.channel.Send(msgRoomList(s.registry.List()))

	case strings.HasPrefix(lower, cmdCreate+" "):
		s.create(commandArg(line))

	case strings.HasPrefix(lower, cmdJoin+" "):
		s.enterRoom(commandArg(line), textYouJoined)

	case strings.HasPrefix(lower, cmdSwitch+" "):
		s.enterRoom(commandArg(line), textYouSwitched)

	case strings.HasPrefix(lower, cmdBan+" "):
		s.ban(commandArg(line))

	case lower == cmdExit:
		return false

	default:
		s.move(line)
	}

	return true
}

func commandArg(line string) string {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (s *ClientSession) create(name string) {
	if name == "" {
		_ = s.channel.Send(msgNotice(textUnknown))
		return
	}

	_, err := s.registry.Create(name)
	if errors.Is(err, ErrRoomExists) {
		_ = s.channel.Send(msgNotice(textExists(name)))
		return
	}

	logf(s.cfg, "ROOMS: Player %q created room %q", s.name, name)
	_ = s.channel.Send(msgNotice(textCreated(name)))
}

// enterRoom moves the session into the named room, leaving its current one
// first: a session occupies at most one room. The join that fills the room
// spawns that room's game runner.
func (s *ClientSession) enterRoom(name string, okText func(string) string) {
	target, err := s.registry.Lookup(name)
	if errors.Is(err, ErrRoomNotFound) {
		_ = s.channel.Send(msgNotice(textNotFound(name)))
		return
	}

	s.leaveRoom()

	start, err := target.Join(s.channel, s.name)
	switch {
	case errors.Is(err, ErrBanned):
		_ = s.channel.Send(msgNotice(textBannedIn(name)))
		return
	case errors.Is(err, ErrRoomNotFound):
		// Reaped between lookup and join.
		_ = s.channel.Send(msgNotice(textNotFound(name)))
		return
	}

	s.room = target
	logf(s.cfg, "ROOMS: Player %q entered room %q", s.name, name)
	_ = s.channel.Send(msgNotice(okText(name)))

	if start {
		go runGame(s.cfg, target)
	}
}

func (s *ClientSession) ban(target string) {
	if s.room == nil {
		_ = s.channel.Send(msgNotice(textNotInRoom))
		return
	}
	if target == "" {
		_ = s.channel.Send(msgNotice(textUnknown))
		return
	}

	s.room.Ban(target)
	logf(s.cfg, "ROOMS: Player %q banned %q in room %q", s.name, target, s.room.Name())
	_ = s.channel.Send(msgNotice(textBanApplied(target, s.room.Name())))
}

func (s *ClientSession) move(line string) {
	if line == "" {
		return
	}
	if s.room == nil {
		_ = s.channel.Send(msgNotice(textUnknown))
		return
	}

	if err := s.room.SubmitMove(s.channel, line); errors.Is(err, ErrNotYourTurn) {
		_ = s.channel.Send(msgMoveRejected("not_your_turn", textNotYourTurn))
	}
}

func (s *ClientSession) leaveRoom() {
	if s.room == nil {
		return
	}
	s.room.Leave(s.channel, s.name)
	s.room = nil
}

func (s *ClientSession) close() {
	s.leaveRoom()
	_ = s.channel.Close()
}
