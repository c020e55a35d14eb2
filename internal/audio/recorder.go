package audio

import "sync"

// Recorder is a Player factory for tests and headless runs. It records every
// Play per cue and can be told to fail.
type Recorder struct {
	mu    sync.Mutex
	plays  map[Cue]int
	stops  map[Cue]int
	primes map[Cue]int
	Err   error
}

func NewRecorder() *Recorder {
	return &Recorder{plays: make(map[Cue]int), stops: make(map[Cue]int), primes: make(map[Cue]int)}
}

// Factory returns a player constructor suitable for NewRegistry.
func (r *Recorder) Factory() func(Cue, string) Player {
	return func(cue Cue, _ string) Player {
		return &recordedPlayer{cue: cue, rec: r}
	}
}

func (r *Recorder) Plays(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plays[cue]
}

func (r *Recorder) Stops(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops[cue]
}

func (r *Recorder) Primes(cue Cue) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.primes[cue]
}

type recordedPlayer struct {
	cue Cue
	rec *Recorder
}

func (p *recordedPlayer) Play() error {
	p.rec.mu.Lock()
	defer p.rec.mu.Unlock()
	p.rec.plays[p.cue]++
	return p.rec.Err
}

func (p *recordedPlayer) Stop() error {
	p.rec.mu.Lock()
	defer p.rec.mu.Unlock()
	p.rec.stops[p.cue]++
	return nil
}

func (p *recordedPlayer) Prime() error {
	p.rec.mu.Lock()
	defer p.rec.mu.Unlock()
	p.rec.primes[p.cue]++
	return nil
}
