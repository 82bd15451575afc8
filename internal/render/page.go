package render

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"comedy-houston/internal/models"
)

var (
	eventsDataRe  = regexp.MustCompile(`(?s)const EVENTS_DATA = \[.*?\];`)
	lastUpdatedRe = regexp.MustCompile(`const LAST_UPDATED = "[^"]*";`)
)

// GeneratePage rewrites the static page by substituting the two
// placeholder statements in the template with the current event data.
// The template and output may be the same file; the page carries its
// own placeholders forward. A failure here is independent of the feed
// write, which has already happened when this runs.
func GeneratePage(templatePath, outputPath string, events []models.Event, updatedAt string) error {
	html, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template %s: %w", templatePath, err)
	}

	if !eventsDataRe.Match(html) || !lastUpdatedRe.Match(html) {
		return fmt.Errorf("template %s is missing the EVENTS_DATA or LAST_UPDATED placeholder", templatePath)
	}

	eventsJSON, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal events: %w", err)
	}

	html = eventsDataRe.ReplaceAll(html, []byte("const EVENTS_DATA = "+string(eventsJSON)+";"))
	html = lastUpdatedRe.ReplaceAll(html, []byte(`const LAST_UPDATED = "`+updatedAt+`";`))

	if err := os.WriteFile(outputPath, html, 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
