//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"go.uber.org/zap"
)

const trackID = "/org/mpris/MediaPlayer2/Track/current"

// Adapter connects the player to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(title string, status Status, cmds *Commands, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	root := &rootAdapter{cmds: cmds}
	player := &playerAdapter{title: title, status: status, cmds: cmds}
	a := &Adapter{server: server.NewServer("couchcontrols", root, player)}

	go func() {
		if err := a.server.Listen(); err != nil {
			logger.Warn("mpris server stopped", zap.Error(err))
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	cmds *Commands
}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error {
	r.cmds.Quit()
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error)      { return true, nil }
func (r *rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return "CouchControls", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https", "file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"video/mp4", "video/x-matroska", "video/webm"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	title  string
	status Status
	cmds   *Commands
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	p.cmds.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.cmds.PlayPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.cmds.Stop()
	return nil
}

func (p *playerAdapter) Play() error {
	p.cmds.Play()
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.cmds.Seek(time.Duration(offset) * time.Microsecond)
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.cmds.SetPosition(time.Duration(position) * time.Microsecond)
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch {
	case !p.status.Ready():
		return types.PlaybackStatusStopped, nil
	case p.status.Playing():
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	if !p.status.Ready() {
		return types.Metadata{}, nil
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackID),
		Length:  types.Microseconds(p.status.Duration().Microseconds()),
		Title:   p.title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetVolume(_ float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) {
	return p.status.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) CanGoNext() (bool, error)      { return false, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error)  { return false, nil }
func (p *playerAdapter) CanPlay() (bool, error)        { return p.status.Ready(), nil }
func (p *playerAdapter) CanPause() (bool, error)       { return p.status.Ready(), nil }
func (p *playerAdapter) CanSeek() (bool, error)        { return p.status.Ready(), nil }
func (p *playerAdapter) CanControl() (bool, error)     { return true, nil }
