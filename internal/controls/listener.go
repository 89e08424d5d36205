package controls

import "time"

// EventListener receives the user's playback intents.
//
// PlayPause, Play and Pause report whether the player is now playing, playing
// or paused respectively. False means the intent could not be applied.
type EventListener interface {
	SkipForward()
	SkipBack()
	PlayPause() bool
	Play() bool
	Pause() bool
}

// ProgressListener supplies the time remaining in the current media.
type ProgressListener interface {
	Progress() time.Duration
}
