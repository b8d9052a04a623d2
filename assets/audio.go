package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/remeh/sizedwaitgroup"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	mu       sync.Mutex
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	missing  map[string]bool   // paths that failed once are not retried
	context  *audio.Context
	fsys     fs.FS
}

// NewAudioLoader creates a loader reading files from fsys.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		missing:  make(map[string]bool),
		context:  ctx,
		fsys:     fsys,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// PreloadAll decodes every path in parallel, bounded by the CPU count.
// It returns the number of files that failed.
func (l *AudioLoader) PreloadAll(paths []string) int {
	var (
		failedMu sync.Mutex
		failed   int
	)
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, p := range paths {
		wg.Add()
		go func(p string) {
			defer wg.Done()
			if err := l.PreloadSFX(p); err != nil {
				failedMu.Lock()
				failed++
				failedMu.Unlock()
			}
		}(p)
	}
	wg.Wait()
	return failed
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	l.mu.Lock()
	if b, ok := l.sfxCache[path]; ok {
		l.mu.Unlock()
		return b, nil
	}
	if l.missing[path] {
		l.mu.Unlock()
		return nil, fmt.Errorf("audio file %s unavailable", path)
	}
	l.mu.Unlock()

	b, err := l.decode(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.missing[path] = true
		return nil, err
	}
	l.sfxCache[path] = b
	return b, nil
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}

// LoadMusic returns a looping streaming player. Music is not cached.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
