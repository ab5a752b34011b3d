package main

import (
	"bytes"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"cannonfire/fx"
	"cannonfire/game"
	"cannonfire/vmath"
)

const (
	channelCount = 2
	maxVoices    = 6
	sfxVolume    = 0.6
)

// otoSound plays bank clips through an oto context, one player per clip
type otoSound struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   *fx.Bank
	voices atomic.Int32
	log    *slog.Logger
}

func newOtoSound(bank *fx.Bank, log *slog.Logger) (*otoSound, error) {
	ctx, ready, err := oto.NewContext(int(bank.Rate()), channelCount, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, err
	}
	return &otoSound{ctx: ctx, ready: ready, bank: bank, log: log.With("component", "audio")}, nil
}

// Play starts a clip in the background. Clips are dropped until the device
// is ready or when too many voices overlap.
func (s *otoSound) Play(clip game.SoundClip, _ vmath.Vec2) {
	select {
	case <-s.ready:
	default:
		return
	}
	pcm := s.bank.PCM(clip)
	if pcm == nil {
		return
	}
	if s.voices.Add(1) > maxVoices {
		s.voices.Add(-1)
		return
	}

	go func() {
		defer s.voices.Add(-1)
		player := s.ctx.NewPlayer(bytes.NewReader(pcm))
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			s.log.Debug("close player", "err", err)
		}
	}()
}
