package core

// Audio is the fire-and-forget soundtrack collaborator.
// No game state depends on the outcome of these calls.
type Audio interface {
	Play()
	Pause()
	Rewind()
}

// NopAudio discards every call.
type NopAudio struct{}

func (NopAudio) Play()   {}
func (NopAudio) Pause()  {}
func (NopAudio) Rewind() {}
