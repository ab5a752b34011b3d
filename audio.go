package main

import (
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"cannonfire/fx"
	"cannonfire/game"
	"cannonfire/vmath"
)

// soundPlayer plays bank clips through ebiten's audio context, capping
// the number of overlapping voices
type soundPlayer struct {
	ctx  *audio.Context
	bank *fx.Bank
	log  *slog.Logger

	mu     sync.Mutex
	voices []*audio.Player
}

func newSoundPlayer(bank *fx.Bank, log *slog.Logger) *soundPlayer {
	return &soundPlayer{
		ctx:  audio.NewContext(int(bank.Rate())),
		bank: bank,
		log:  log.With("component", "audio"),
	}
}

// Play starts a clip unless too many are already playing
func (s *soundPlayer) Play(clip game.SoundClip, _ vmath.Vec2) {
	pcm := s.bank.PCM(clip)
	if pcm == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.voices[:0]
	for _, v := range s.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		if err := v.Close(); err != nil {
			s.log.Debug("close voice", "err", err)
		}
	}
	s.voices = live
	if len(live) >= maxVoices {
		s.log.Debug("voice limit, dropping clip", "clip", clip.String())
		return
	}

	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(soundVolume)
	p.Play()
	s.voices = append(s.voices, p)
}
