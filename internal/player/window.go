package player

import "errors"

// ErrNoWindow means no native window could be found to embed mpv into.
var ErrNoWindow = errors.New("player: no native window handle")
