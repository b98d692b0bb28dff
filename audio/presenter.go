package audio

import "github.com/lixenwraith/guess/game"

// Presenter decorates a game.Presenter with sound cues
// Prompts, echoes and the final reveal stay silent
type Presenter struct {
	game.Presenter
	player Player
}

// NewPresenter wraps next so each feedback category also plays a cue
func NewPresenter(next game.Presenter, player Player) *Presenter {
	return &Presenter{Presenter: next, player: player}
}

func (p *Presenter) TooSmall() {
	p.Presenter.TooSmall()
	p.player.Play(CueTooSmall)
}

func (p *Presenter) TooBig() {
	p.Presenter.TooBig()
	p.player.Play(CueTooBig)
}

func (p *Presenter) Win() {
	p.Presenter.Win()
	p.player.Play(CueWin)
}
