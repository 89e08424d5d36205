package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/assets/icon"
	"github.com/depeter/couchcontrols/internal/app"
	"github.com/depeter/couchcontrols/internal/config"
	"github.com/depeter/couchcontrols/internal/jellyfin"
	"github.com/depeter/couchcontrols/internal/ui"
)

var playOpts struct {
	itemID     string
	title      string
	start      float64
	fullscreen bool
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVarP(&playOpts.itemID, "item", "i", "", "Play a Jellyfin item by ID instead of a URL")
	playCmd.Flags().StringVarP(&playOpts.title, "title", "t", "", "Title shown on the controls")
	playCmd.Flags().Float64VarP(&playOpts.start, "start", "s", 0, "Start position in seconds (default: resume position for Jellyfin items)")
	playCmd.Flags().BoolVarP(&playOpts.fullscreen, "fullscreen", "f", false, "Start in fullscreen")
}

var playCmd = &cobra.Command{
	Use:   "play [url|file]",
	Short: "Play a file or stream with the TV controls",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && playOpts.itemID == "" {
			return errors.New("nothing to play: pass a URL or --item")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		if err := ui.InitFonts(nil); err != nil {
			return fmt.Errorf("init fonts: %w", err)
		}

		media, client, err := resolveMedia(cmd, cfg, args)
		if err != nil {
			return err
		}
		logger.Info("playing", zap.String("title", media.Title), zap.String("item", media.ItemID), zap.Duration("start", media.Start))

		game, err := app.NewGame(cfg, media, client, logger)
		if err != nil {
			return err
		}

		ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
		ebiten.SetWindowTitle(windowTitle(media.Title))
		ebiten.SetWindowIcon(icon.Generate())
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetFullscreen(cfg.UI.Fullscreen || playOpts.fullscreen)
		// Keep ticking in the background so focus loss is noticed.
		ebiten.SetRunnableOnUnfocused(true)

		runErr := ebiten.RunGame(game)
		return errors.Join(runErr, game.Close())
	},
}

// resolveMedia builds the Media to play from the arguments. For --item the
// stream URL, title and resume position come from the Jellyfin server.
func resolveMedia(cmd *cobra.Command, cfg *config.Config, args []string) (app.Media, *jellyfin.Client, error) {
	media := app.Media{
		Title: playOpts.title,
		Start: seconds(playOpts.start),
	}
	if playOpts.itemID == "" {
		media.URL = args[0]
		if media.Title == "" {
			media.Title = args[0]
		}
		return media, nil, nil
	}

	if cfg.Server.URL == "" || cfg.Server.Token == "" {
		return media, nil, errors.New("--item needs server.url and server.token in the config")
	}
	client := jellyfin.NewClient(cmd.Context(), cfg.Server.URL)
	client.SetToken(cfg.Server.Token, cfg.Server.UserID)

	item, err := client.GetItem(playOpts.itemID)
	if err != nil {
		return media, nil, fmt.Errorf("get item %s: %w", playOpts.itemID, err)
	}
	media.ItemID = item.ID
	media.URL = client.GetStreamURL(item.ID)
	if media.Title == "" {
		media.Title = item.Title()
	}
	if !cmd.Flags().Changed("start") {
		media.Start = item.ResumePosition
	}
	return media, client, nil
}

func windowTitle(title string) string {
	if title == "" {
		return "CouchControls"
	}
	return title + " - CouchControls"
}
