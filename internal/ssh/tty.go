package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty presents one SSH session as a tcell.Tty so each connection can own
// an independent screen.
type Tty struct {
	session gossh.Session

	mu       sync.Mutex
	size     gossh.Window
	onResize func()
	closed   bool
}

// NewTty wraps s. pty carries the initial window size; resizes arrive on
// winCh and are applied for the lifetime of the session.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	t := &Tty{session: s, size: pty.Window}
	go t.watch(winCh)
	return t
}

func (t *Tty) watch(winCh <-chan gossh.Window) {
	for win := range winCh {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

func (t *Tty) Read(b []byte) (int, error) {
	if t.isClosed() {
		return 0, io.EOF
	}
	return t.session.Read(b)
}

func (t *Tty) Write(b []byte) (int, error) {
	if t.isClosed() {
		return 0, io.ErrClosedPipe
	}
	return t.session.Write(b)
}

// Close ends the SSH channel. Later reads report EOF.
func (t *Tty) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()
	return t.session.Close()
}

// Start, Stop and Drain have nothing to do: the channel is already in raw
// mode on the client side and writes are not buffered here.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent terminal size the client reported.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize registers the callback tcell uses to learn about resizes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
}

func (t *Tty) isClosed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
