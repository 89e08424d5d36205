package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/controls"
	"github.com/depeter/couchcontrols/internal/jellyfin"
	"github.com/depeter/couchcontrols/internal/looper"
	"github.com/depeter/couchcontrols/internal/mpris"
	"github.com/depeter/couchcontrols/internal/osd"
	"github.com/depeter/couchcontrols/internal/player"
	"github.com/depeter/couchcontrols/internal/playback"
	"github.com/depeter/couchcontrols/internal/remote"
	"github.com/depeter/couchcontrols/internal/ui"
)

var (
	_ controls.EventListener    = (*playback.Session)(nil)
	_ controls.ProgressListener = (*playback.Session)(nil)
	_ controls.View             = (*osd.View)(nil)
	_ controls.Animator         = (*osd.Animator)(nil)
	_ osd.OverlaySink           = (*player.Player)(nil)
	_ playback.MediaPlayer      = (*player.Player)(nil)
	_ mpris.Status              = (*playback.Session)(nil)
)

const (
	surfaceFade    = 300 * time.Millisecond
	reportInterval = 10 * time.Second
)

// Media is what to play.
type Media struct {
	URL   string
	Title string
	Start time.Duration
	// ItemID is set when the media comes from Jellyfin; playback is reported
	// back to the server.
	ItemID string
}

// Game implements ebiten.Game and hosts the playback controls.
type Game struct {
	cfg    *config.Config
	log    *zap.Logger
	media  Media
	client *jellyfin.Client

	player   *player.Player
	session  *playback.Session
	loop     *looper.Looper
	view     *osd.View
	animator *osd.Animator
	controls *controls.Controller

	keyboard *Keyboard
	remote   *remote.Reader
	cmds     *mpris.Commands
	mpris    *mpris.Adapter

	status ui.StatusScreen

	readyCh chan time.Duration
	endCh   chan struct{}

	started  bool
	focused  bool
	debug    bool
	quitting bool
}

// NewGame creates the Game with all dependencies. client may be nil.
func NewGame(cfg *config.Config, media Media, client *jellyfin.Client, logger *zap.Logger) (*Game, error) {
	ctrlCfg, err := cfg.ControlsConfig()
	if err != nil {
		return nil, fmt.Errorf("controls config: %w", err)
	}

	p, err := player.New(cfg, logger.Named("player"))
	if err != nil {
		return nil, err
	}

	forward, back := cfg.SkipIncrements()
	clock := clockwork.NewRealClock()

	g := &Game{
		cfg:      cfg,
		log:      logger,
		media:    media,
		client:   client,
		player:   p,
		session:  playback.NewSession(p, forward, back, logger.Named("playback")),
		loop:     looper.New(clock),
		view:     osd.NewView(),
		keyboard: NewKeyboard(cfg.Keybinds, logger),
		remote:   remote.Open(logger.Named("remote")),
		cmds:     mpris.NewCommands(forward, back),
		readyCh:  make(chan time.Duration, 1),
		endCh:    make(chan struct{}, 1),
		status:   ui.StatusScreen{Title: media.Title},
	}
	g.view.SetTitle(media.Title)
	g.animator = osd.NewAnimator(g.view, clock, logger.Named("animator"))
	g.controls = controls.New(ctrlCfg, g.view, g.animator, g.loop, logger.Named("controls"))
	g.controls.SetEventListener(g.session)
	g.controls.SetProgressListener(g.session)

	// mpv calls these from its event goroutine.
	p.OnReady = func(d time.Duration) {
		select {
		case g.readyCh <- d:
		default:
		}
	}
	p.OnPlaybackEnd = func() {
		select {
		case g.endCh <- struct{}{}:
		default:
		}
	}

	g.mpris, err = mpris.New(media.Title, g.session, g.cmds, logger.Named("mpris"))
	if err != nil {
		logger.Warn("mpris unavailable", zap.Error(err))
	}
	return g, nil
}

// start embeds mpv into the window and loads the media. It runs on the first
// Update, once the window exists.
func (g *Game) start() error {
	wid, err := player.WindowHandle()
	if err != nil {
		g.log.Warn("playing in a separate mpv window", zap.Error(err))
	} else if err := g.player.SetWindowID(wid); err != nil {
		g.log.Warn("failed to set window ID", zap.Error(err))
	}

	if err := g.player.Start(); err != nil {
		return err
	}
	if err := g.player.LoadFile(g.media.URL, g.media.Start.Seconds()); err != nil {
		return fmt.Errorf("load %s: %w", g.media.URL, err)
	}

	if g.client != nil && g.media.ItemID != "" {
		itemID, start := g.media.ItemID, g.media.Start
		go func() {
			if err := g.client.ReportPlaybackStart(itemID, start); err != nil {
				g.log.Warn("jellyfin", zap.Error(err))
			}
		}()
	}
	return nil
}

func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}

	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	// F12 toggles the input debug panel
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.toggleDebug()
	}

	if !g.started {
		g.started = true
		g.focused = ebiten.IsFocused()
		if err := g.start(); err != nil {
			g.log.Error("playback failed to start", zap.Error(err))
			g.status.Err = err
		} else if g.focused {
			g.controls.OnAttached()
		}
	}
	g.status.Update()

	select {
	case d := <-g.readyCh:
		g.onReady(d)
	case <-g.endCh:
		g.log.Info("playback ended")
		g.quit()
		return nil
	default:
	}

	g.updateFocus()

	for _, ev := range g.keyboard.Poll() {
		g.handleKey(ev)
	}
	g.drainKeys(g.remote.Events())
	g.drainKeys(g.cmds.Events())
	select {
	case pos := <-g.cmds.Positions():
		g.seekTo(pos)
	default:
	}

	g.loop.RunDue()
	g.animator.Update()
	if g.status.Err == nil {
		if err := g.view.Flush(g.player); err != nil {
			g.log.Debug("osd overlay", zap.Error(err))
		}
	}
	if g.debug {
		g.flushDebug()
	}
	return nil
}

func (g *Game) onReady(d time.Duration) {
	if err := g.controls.Load(d); err != nil {
		g.log.Warn("media not loadable", zap.Duration("duration", d), zap.Error(err))
		return
	}
	g.animator.Animate(controls.Transition{
		Name:     "surface",
		Target:   controls.TargetSurface,
		Tweens:   []controls.Tween{{Property: controls.PropertyAlpha, To: 1}},
		Duration: surfaceFade,
		Easing:   controls.EaseAccelerate,
		OnBegin: func() {
			g.view.SetVisible(controls.TargetSurface, true)
			g.view.SetProperty(controls.TargetSurface, controls.PropertyAlpha, 0)
		},
		OnEnd:    func() { g.view.SetVisible(controls.TargetSurface, true) },
		OnCancel: func() { g.view.SetVisible(controls.TargetSurface, true) },
	})
	if g.client != nil && g.media.ItemID != "" {
		g.loop.PostDelayed(g.reportProgress, reportInterval)
	}
}

// reportProgress sends the position to Jellyfin and reschedules itself.
func (g *Game) reportProgress() {
	itemID, position, paused := g.media.ItemID, g.session.Position(), !g.session.Playing()
	go func() {
		if err := g.client.ReportPlaybackProgress(itemID, position, paused); err != nil {
			g.log.Debug("jellyfin", zap.Error(err))
		}
	}()
	g.loop.PostDelayed(g.reportProgress, reportInterval)
}

// updateFocus pauses and detaches the controls while the window is in the
// background.
func (g *Game) updateFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if !focused {
		g.session.Pause()
		g.controls.OnDetached()
		g.view.ClearFocus()
		return
	}
	g.controls.OnAttached()
}

func (g *Game) drainKeys(ch <-chan controls.KeyEvent) {
	for {
		select {
		case ev := <-ch:
			g.handleKey(ev)
		default:
			return
		}
	}
}

func (g *Game) handleKey(ev controls.KeyEvent) {
	g.log.Debug("key", zap.Stringer("event", ev))
	if ev.Action == controls.ActionDown && ev.RepeatCount == 0 {
		switch ev.Code {
		case controls.KeyBack, controls.KeyMediaStop:
			g.quit()
			return
		}
	}
	if g.status.Err != nil {
		return
	}
	// Any press counts as user interaction and brings the controls up first.
	if ev.Action == controls.ActionDown && !g.controls.Visible() {
		g.controls.Show()
	}
	g.controls.OnKeyEvent(ev)
}

// seekTo handles an absolute seek from the desktop, bringing the controls up
// like any other interaction.
func (g *Game) seekTo(pos time.Duration) {
	if g.status.Err != nil {
		return
	}
	if !g.controls.Visible() {
		g.controls.Show()
	}
	g.session.SeekTo(pos)
}

func (g *Game) toggleDebug() {
	g.debug = !g.debug
	if !g.debug {
		if err := g.player.RemoveOSDOverlay(osd.DebugOverlayID); err != nil {
			g.log.Debug("osd overlay", zap.Error(err))
		}
	}
}

func (g *Game) flushDebug() {
	lines := []string{
		"Debug: input (F12 to close)",
		fmt.Sprintf("state=%s visible=%v attached=%v", g.controls.State(), g.controls.Visible(), g.controls.Attached()),
		fmt.Sprintf("progress=%s seek=%d/%d", g.controls.ProgressText(), g.controls.SeekBarPosition(), controls.SeekBarMax),
	}
	if at, ok := g.controls.HideDeadline(); ok {
		lines = append(lines, fmt.Sprintf("hide in %s", time.Until(at).Truncate(10*time.Millisecond)))
	}
	lines = append(lines, "--- evdev key presses ---")
	now := time.Now()
	for _, ev := range g.remote.Recent() {
		lines = append(lines, fmt.Sprintf("%s  code=%-4d  %s ago", ev.Device, ev.Code, now.Sub(ev.Time).Truncate(time.Millisecond)))
	}
	if err := g.player.SetOSDOverlay(osd.DebugOverlayID, osd.RenderDebug(lines), osd.CanvasWidth, osd.CanvasHeight); err != nil {
		g.log.Debug("osd overlay", zap.Error(err))
	}
}

func (g *Game) quit() {
	g.quitting = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Once embedded, mpv owns the window surface via --wid and draws the
	// controls through osd-overlay. This only shows before that, or on error.
	g.status.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ui.ScreenWidth, ui.ScreenHeight
}

// Close tears down playback. Call after ebiten.RunGame returns.
func (g *Game) Close() error {
	g.controls.Release()
	g.animator.CancelAll()
	g.loop.Clear()

	position := g.session.Position()
	var errs []error
	if g.player.Playing() {
		errs = append(errs, g.player.Stop())
	}
	if g.client != nil && g.media.ItemID != "" {
		if err := g.client.ReportPlaybackStopped(g.media.ItemID, position); err != nil {
			errs = append(errs, err)
		}
	}
	if g.mpris != nil {
		errs = append(errs, g.mpris.Close())
	}
	errs = append(errs, g.remote.Close())
	g.player.Destroy()
	return errors.Join(errs...)
}
