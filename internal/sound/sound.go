//go:build !ci

package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// 支持的扩展名，按优先级排列
var cueExts = []string{".wav", ".mp3"}

// SoundManager 按音效名预加载缓冲并通过扬声器播放
type SoundManager struct {
	dir     string
	log     zerolog.Logger
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(dir string, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		dir:     dir,
		log:     log.With().Str("component", "sound").Logger(),
		buffers: make(map[string]*beep.Buffer, len(Cues)),
	}
}

// Init 打开扬声器并加载 Cues 中的音效。缺失或无法解码的音效只记录日志。
func (sm *SoundManager) Init() error {
	// 较小的缓冲降低延迟
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true
	sm.loadCues()
	return nil
}

func (sm *SoundManager) loadCues() {
	for _, name := range Cues {
		path, err := findCue(sm.dir, name)
		if err != nil {
			sm.log.Warn().Err(err).Str("cue", name).Str("dir", sm.dir).Msg("音效文件缺失")
			continue
		}
		buf, err := decodeCue(path)
		if err != nil {
			sm.log.Warn().Err(err).Str("cue", name).Str("path", path).Msg("音效解码失败")
			continue
		}
		sm.buffers[name] = buf
	}
	sm.log.Debug().Int("loaded", len(sm.buffers)).Int("total", len(Cues)).Msg("音效加载完成")
}

// findCue 在 dir 中查找 name.wav 或 name.mp3
func findCue(dir, name string) (string, error) {
	for _, ext := range cueExts {
		path := filepath.Clean(filepath.Join(dir, name+ext))
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

// decodeCue 解码音效并重采样到扬声器采样率
func decodeCue(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	if filepath.Ext(path) == ".mp3" {
		streamer, format, err = mp3.Decode(f)
	} else {
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = streamer.Close() }()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 4})
	buf.Append(s)
	return buf, nil
}

// Loaded 已加载的音效数量
func (sm *SoundManager) Loaded() int {
	return len(sm.buffers)
}

// Play 播放音效，未初始化或未加载时静默
func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}
	buf, ok := sm.buffers[name]
	if !ok {
		sm.log.Debug().Str("cue", name).Msg("音效未加载")
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
