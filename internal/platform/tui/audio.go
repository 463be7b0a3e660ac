package tui

import (
	"github.com/charmbracelet/log"
)

// loggedAudio stands in for a soundtrack player: a terminal has no audio
// device, so each cue is only recorded in the debug log.
type loggedAudio struct {
	logger *log.Logger
}

func (a loggedAudio) Play()   { a.logger.Debug("audio", "cue", "play") }
func (a loggedAudio) Pause()  { a.logger.Debug("audio", "cue", "pause") }
func (a loggedAudio) Rewind() { a.logger.Debug("audio", "cue", "rewind") }
