package jellyfin

import (
	"fmt"
	"time"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// ReportPlaybackStart notifies the server that playback has started.
func (c *Client) ReportPlaybackStart(itemID string, position time.Duration) error {
	body := *jellyfin.NewPlaybackStartInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(durationToTicks(position))
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	_, err := c.api.PlaystateAPI.ReportPlaybackStart(c.ctx).PlaybackStartInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback start: %w", err)
	}
	return nil
}

// ReportPlaybackProgress sends a progress update to the server.
func (c *Client) ReportPlaybackProgress(itemID string, position time.Duration, isPaused bool) error {
	body := *jellyfin.NewPlaybackProgressInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(durationToTicks(position))
	body.SetIsPaused(isPaused)
	body.SetCanSeek(true)
	body.SetPlayMethod(jellyfin.PLAYMETHOD_DIRECT_PLAY)

	_, err := c.api.PlaystateAPI.ReportPlaybackProgress(c.ctx).PlaybackProgressInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report progress: %w", err)
	}
	return nil
}

// ReportPlaybackStopped notifies the server that playback has stopped.
func (c *Client) ReportPlaybackStopped(itemID string, position time.Duration) error {
	body := *jellyfin.NewPlaybackStopInfo()
	body.SetItemId(itemID)
	body.SetPositionTicks(durationToTicks(position))

	_, err := c.api.PlaystateAPI.ReportPlaybackStopped(c.ctx).PlaybackStopInfo(body).Execute()
	if err != nil {
		return fmt.Errorf("report playback stopped: %w", err)
	}
	return nil
}
