package audio

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the speaker rate; every cue is resampled to it when loaded.
const SampleRate = beep.SampleRate(44100)

//go:embed assets/*.wav
var embedded embed.FS

// DefaultAssets are the built-in cues, played when no file is configured.
var DefaultAssets = Assets{
	CueStart:   "assets/beep-up.wav",
	CueWarning: "assets/beep-down.wav",
}

var ErrUnsupportedFormat = errors.New("audio: unsupported asset format")

// Output mixes decoded cues. Lock and Unlock guard streamers that are
// already playing.
type Output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

var (
	speakerOnce sync.Once
	speakerErr  error
)

// NewSpeaker opens the audio device. The device is initialised once per
// process; later calls return the same result.
func NewSpeaker() (Output, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, speakerErr)
	}
	return speakerOutput{}, nil
}

// OpenAsset opens a built-in asset by its DefaultAssets path, or a file.
func OpenAsset(path string) (io.ReadCloser, error) {
	if f, err := embedded.Open(path); err == nil {
		return f, nil
	}
	return os.Open(path)
}

type decoder func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) }, nil
	case ".mp3":
		return mp3.Decode, nil
	}
	return nil, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// LoadBuffer decodes a WAV or MP3 cue fully into memory at SampleRate.
func LoadBuffer(path string) (*beep.Buffer, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	rc, err := OpenAsset(path)
	if err != nil {
		return nil, fmt.Errorf("open cue %q: %w", path, err)
	}
	defer rc.Close()

	stream, format, err := decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode cue %q: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	if format.SampleRate != SampleRate {
		src = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode cue %q: no samples", path)
	}
	return buf, nil
}

// BufferPlayer plays a decoded cue. Each Play starts a fresh copy from the
// first sample; Stop silences the copy still playing.
type BufferPlayer struct {
	buf *beep.Buffer
	out Output

	mu   sync.Mutex
	ctrl *beep.Ctrl
}

func NewBufferPlayer(buf *beep.Buffer, out Output) *BufferPlayer {
	return &BufferPlayer{buf: buf, out: out}
}

func (p *BufferPlayer) Play() error {
	if p.buf == nil || p.out == nil {
		return ErrUnavailable
	}
	ctrl := &beep.Ctrl{Streamer: p.buf.Streamer(0, p.buf.Len())}
	p.mu.Lock()
	p.ctrl = ctrl
	p.mu.Unlock()
	p.out.Play(ctrl)
	return nil
}

func (p *BufferPlayer) Stop() error {
	p.mu.Lock()
	ctrl := p.ctrl
	p.ctrl = nil
	p.mu.Unlock()
	if ctrl == nil || p.out == nil {
		return nil
	}
	p.out.Lock()
	ctrl.Streamer = nil
	p.out.Unlock()
	return nil
}

// Prime wakes the output with a few milliseconds of silence.
func (p *BufferPlayer) Prime() error {
	if p.out == nil {
		return ErrUnavailable
	}
	p.out.Play(beep.Silence(SampleRate.N(10 * time.Millisecond)))
	return nil
}
