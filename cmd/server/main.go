// raycaster-server serves the ray-cast courtyard over SSH. Every connection
// gets its own simulation. Build:
//
//	go build -o raycaster-server ./cmd/server
//
// Usage:
//
//	./raycaster-server [--port 2222] [--key server_host_key] [--map courtyard]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode"

	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/logging"
	internalssh "raycaster/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	maxSessions := flag.Int("max-sessions", 16, "Maximum concurrent sessions")
	flag.StringVar(&cfg.Map, "map", cfg.Map, "Map every session starts on")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed when -map is maze")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (DEBUG, INFO, WARNING, ERROR)")
	flag.Parse()

	if err := logging.Init(os.Stderr, cfg.LogLevel, true); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logging.Log.Criticalf("bad configuration: %v", err)
		os.Exit(1)
	}

	signer, err := loadOrCreateHostKey(*keyFile)
	if err != nil {
		logging.Log.Criticalf("host key: %v", err)
		os.Exit(1)
	}
	h := newHub(cfg, *maxSessions)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logging.Log.Infof("raycaster SSH server listening on :%d", *port)
	logging.Log.Infof("connect with:  ssh -t -p %d localhost", *port)
	if err := srv.ListenAndServe(); err != nil {
		logging.Log.Criticalf("serve: %v", err)
		os.Exit(1)
	}
}

// ─── hub ────────────────────────────────────────────────────────────────────

// allowedTerms are the TERM values we hand to terminfo. Anything else falls
// back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

// errFull is reported to a client when every session slot is taken.
var errFull = errors.New("server is full, try again later")

// hub counts the sessions in flight and builds a game for each one.
type hub struct {
	cfg    config.Config
	limit  int
	mu     sync.Mutex
	active int
}

func newHub(cfg config.Config, limit int) *hub {
	return &hub{cfg: cfg, limit: max(limit, 1)}
}

// acquire reserves a session slot.
func (h *hub) acquire() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.active >= h.limit {
		return errFull
	}
	h.active++
	return nil
}

func (h *hub) release() {
	h.mu.Lock()
	h.active--
	h.mu.Unlock()
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks until the player quits or disconnects.
func (h *hub) handleSession(s gossh.Session) {
	who := sessionLabel(s.User())
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This program needs a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err := h.acquire(); err != nil {
		fmt.Fprintln(s, err)
		return
	}
	defer h.release()

	term := pickTerm(pty.Term, s.Environ())
	tty := internalssh.NewTty(s, pty, winCh)

	// TERM must be set in the process environment before terminfo lookup.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	g, err := game.New(screen, h.cfg)
	if err != nil {
		logging.Log.Errorf("%s: %v", who, err)
		return
	}
	g.SaveLog = false

	logging.Log.Infof("%s connected (%s)", who, term)
	if err := g.Run(s.Context()); err != nil && !errors.Is(err, s.Context().Err()) {
		logging.Log.Warningf("%s: %v", who, err)
	}
	st := g.Simulation().Stats()
	logging.Log.Infof("%s left after %d ticks", who, st.Ticks)
}

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// pickTerm prefers the PTY's terminal type, then TERM from the session
// environment, and only accepts values on the allow-list.
func pickTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return defaultTerm
}

// sessionLabel makes a user name safe to log: control characters are
// dropped and the result is capped at 16 bytes on a rune boundary.
func sessionLabel(user string) string {
	const limit = 16
	var b strings.Builder
	for _, r := range user {
		if unicode.IsControl(r) || !unicode.IsPrint(r) {
			continue
		}
		if b.Len()+len(string(r)) > limit {
			break
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "anonymous"
	}
	return b.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logging.Log.Infof("loaded host key from %s", path)
			return signer, nil
		}
	}

	logging.Log.Infof("generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best-effort; a fresh key next run only costs a warning.
	pemBlock, err := xssh.MarshalPrivateKey(key, "raycaster server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logging.Log.Warningf("host key not saved: %v", err)
	}
	return signer, nil
}
