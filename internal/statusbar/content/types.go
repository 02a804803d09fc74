// Package content provides the renderable content of the status bar
// Content Layer: mode, session text and clock
package content

// ContentType names an element of the bar
type ContentType string

const (
	ContentMode    ContentType = "mode"
	ContentSession ContentType = "session"
	ContentTabs    ContentType = "tabs"
	ContentClock   ContentType = "clock"
)

// AllContentTypes lists every element in display order
func AllContentTypes() []ContentType {
	return []ContentType{ContentMode, ContentSession, ContentTabs, ContentClock}
}
