//go:build ci

package sound

import "github.com/rs/zerolog"

type SoundManager struct{}

func NewSoundManager(string, zerolog.Logger) *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Loaded() int {
	return 0
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
