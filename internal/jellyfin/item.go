package jellyfin

import (
	"fmt"
	"time"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// ticksPerSecond is the Jellyfin tick rate (100ns ticks).
const ticksPerSecond = 10_000_000

// Item is the part of a Jellyfin item needed to play it.
type Item struct {
	ID                string
	Name              string
	Type              string // Movie, Episode, ...
	SeriesName        string
	IndexNumber       int
	ParentIndexNumber int
	Runtime           time.Duration
	ResumePosition    time.Duration
}

// Title returns the display title, with series and episode numbers for
// episodes.
func (i Item) Title() string {
	if i.SeriesName == "" {
		return i.Name
	}
	if i.ParentIndexNumber > 0 && i.IndexNumber > 0 {
		return fmt.Sprintf("%s S%02dE%02d · %s", i.SeriesName, i.ParentIndexNumber, i.IndexNumber, i.Name)
	}
	return fmt.Sprintf("%s · %s", i.SeriesName, i.Name)
}

// GetItem returns a single item by ID.
func (c *Client) GetItem(itemID string) (*Item, error) {
	result, _, err := c.api.UserLibraryAPI.GetItem(c.ctx, itemID).
		UserId(c.userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	item := convertBaseItemDto(result)
	return &item, nil
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) Item {
	it := Item{
		ID:                item.GetId(),
		Name:              item.GetName(),
		SeriesName:        item.GetSeriesName(),
		IndexNumber:       int(item.GetIndexNumber()),
		ParentIndexNumber: int(item.GetParentIndexNumber()),
		Runtime:           ticksToDuration(item.GetRunTimeTicks()),
	}
	if item.Type != nil {
		it.Type = string(*item.Type)
	}
	if item.UserData.IsSet() {
		if ud := item.UserData.Get(); ud != nil {
			it.ResumePosition = ticksToDuration(ud.GetPlaybackPositionTicks())
		}
	}
	return it
}

func ticksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * (time.Second / ticksPerSecond)
}

func durationToTicks(d time.Duration) int64 {
	return int64(d / (time.Second / ticksPerSecond))
}
