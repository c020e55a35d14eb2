// Package audio plays the short cues that accompany a countdown.
package audio

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// Cue names a process-wide audio asset.
type Cue string

const (
	CueStart   Cue = "start"
	CueWarning Cue = "warning"
)

var (
	ErrUnknownCue  = errors.New("audio: unknown cue")
	ErrUnavailable = errors.New("audio: player unavailable")
)

// Player plays a single asset. Play restarts the asset from the beginning.
type Player interface {
	Play() error
	Stop() error
}

// Primer is implemented by players that need a one-off warm-up before their
// first cue. Priming must not be audible.
type Primer interface {
	Prime() error
}

// Assets maps cue names to asset paths.
type Assets map[Cue]string

// Registry owns one Player per cue. Build it once at start-up and hand it to
// every timer; it is safe to share between sessions.
type Registry struct {
	mu       sync.Mutex
	players  map[Cue]Player
	unlocked bool
	log      *slog.Logger
}

// NewRegistry creates a player for every asset with newPlayer.
func NewRegistry(assets Assets, newPlayer func(cue Cue, path string) Player, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	r := &Registry{players: make(map[Cue]Player, len(assets)), log: log}
	for cue, path := range assets {
		r.players[cue] = newPlayer(cue, path)
	}
	return r
}

// Play stops the cue and plays it again from the start. Failures are logged
// and swallowed.
func (r *Registry) Play(cue Cue) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[cue]
	if !ok {
		r.log.Debug("cue not registered", "cue", cue, "err", ErrUnknownCue)
		return
	}
	_ = p.Stop()
	if err := p.Play(); err != nil {
		r.log.Debug("cue playback failed", "cue", cue, "err", err)
	}
}

// Unlock primes every player that supports it. Only the first call does
// anything.
func (r *Registry) Unlock() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unlocked {
		return
	}
	r.unlocked = true
	for cue, p := range r.players {
		pr, ok := p.(Primer)
		if !ok {
			continue
		}
		if err := pr.Prime(); err != nil {
			r.log.Debug("cue unlock failed", "cue", cue, "err", err)
		}
	}
}

// NopPlayer is used when sound is muted.
type NopPlayer struct{}

func (NopPlayer) Play() error { return nil }
func (NopPlayer) Stop() error { return nil }

// BellPlayer rings the terminal bell.
type BellPlayer struct {
	W io.Writer
}

func (b BellPlayer) Play() error {
	if b.W == nil {
		return ErrUnavailable
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

func (BellPlayer) Stop() error { return nil }

// CommandPlayer plays a file through an external program such as paplay or
// afplay. A new Play kills the previous process of the same player.
type CommandPlayer struct {
	Command string
	Path    string

	mu       sync.Mutex
	cmd      *exec.Cmd
	resolved string
}

func NewCommandPlayer(command, path string) *CommandPlayer {
	return &CommandPlayer{Command: command, Path: path}
}

// Prime resolves the command and checks the asset once.
func (c *CommandPlayer) Prime() error {
	if c.Command == "" || c.Path == "" {
		return ErrUnavailable
	}
	bin, err := exec.LookPath(c.Command)
	if err != nil {
		return err
	}
	if _, err := os.Stat(c.Path); err != nil {
		return err
	}
	c.mu.Lock()
	c.resolved = bin
	c.mu.Unlock()
	return nil
}

func (c *CommandPlayer) Play() error {
	c.mu.Lock()
	bin := c.resolved
	c.mu.Unlock()
	if bin == "" {
		if err := c.Prime(); err != nil {
			return err
		}
		c.mu.Lock()
		bin = c.resolved
		c.mu.Unlock()
	}
	cmd := exec.Command(bin, c.Path)
	if err := cmd.Start(); err != nil {
		return err
	}
	c.mu.Lock()
	c.cmd = cmd
	c.mu.Unlock()
	go func() {
		_ = cmd.Wait()
		c.mu.Lock()
		if c.cmd == cmd {
			c.cmd = nil
		}
		c.mu.Unlock()
	}()
	return nil
}

func (c *CommandPlayer) Stop() error {
	c.mu.Lock()
	cmd := c.cmd
	c.cmd = nil
	c.mu.Unlock()
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
