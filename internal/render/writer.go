package render

import (
	"encoding/json"
	"fmt"
	"os"

	"comedy-houston/internal/models"
)

// WriteFeedJSON overwrites the feed file in full. There is no
// incremental update; every run rebuilds the whole feed.
func WriteFeedJSON(path string, feed models.Feed) error {
	data, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal feed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
