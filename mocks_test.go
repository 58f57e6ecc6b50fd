package main

import (
	"sync"
)

// fakeChannel is an in-memory SessionChannel: inbound lines come from a
// buffered channel, outbound messages accumulate for inspection.
type fakeChannel struct {
	mu     sync.Mutex
	sent   []any
	inbox  chan string
	closed bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		inbox: make(chan string, 16),
	}
}

func (c *fakeChannel) Send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrChannelClosed
	}
	c.sent = append(c.sent, msg)
	return nil
}

func (c *fakeChannel) Receive() (string, error) {
	line, ok := <-c.inbox
	if !ok {
		return "", ErrChannelClosed
	}
	return line, nil
}

func (c *fakeChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.inbox)
	return nil
}

func (c *fakeChannel) push(line string) {
	c.inbox <- line
}

// messages returns a snapshot of everything sent so far.
func (c *fakeChannel) messages() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]any, len(c.sent))
	copy(out, c.sent)
	return out
}

// promptCount counts turn prompts received so far.
func (c *fakeChannel) promptCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, msg := range c.sent {
		if _, ok := msg.(TurnPromptMessage); ok {
			count++
		}
	}
	return count
}

// noticeTexts extracts the Message field of every notice received.
func (c *fakeChannel) noticeTexts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []string
	for _, msg := range c.sent {
		if n, ok := msg.(NoticeMessage); ok {
			out = append(out, n.Message)
		}
	}
	return out
}

func (c *fakeChannel) hasNotice(text string) bool {
	for _, got := range c.noticeTexts() {
		if got == text {
			return true
		}
	}
	return false
}

func (c *fakeChannel) lastScoreboard() (ScoreboardMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.sent) - 1; i >= 0; i-- {
		if sb, ok := c.sent[i].(ScoreboardMessage); ok {
			return sb, true
		}
	}
	return ScoreboardMessage{}, false
}

func testConfig() *Config {
	return &Config{
		bind: "127.0.0.1",
		port: 8080,
	}
}
