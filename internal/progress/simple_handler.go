package progress

import (
	"fmt"
	"io"
)

// SimpleHandler outputs events as plain lines, one per event
type SimpleHandler struct {
	writer io.Writer
}

func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	return &SimpleHandler{writer: writer}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventScanStart:
		fmt.Fprintf(h.writer, "[SCAN] Starting: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[SCAN] Excluding: %s\n", event.Info)
		}

	case EventScanComplete:
		fmt.Fprintf(h.writer, "[SCAN] Completed: %d files in %.1fs\n",
			event.FileCount, event.Duration.Seconds())

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "[DIR]  Entering: %s\n", event.Path)

	case EventFileResolved:
		fmt.Fprintf(h.writer, "[FILE] %s: %s\n", event.Path, event.Language)

	case EventFileUnknown:
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[FILE] %s: unknown (%s)\n", event.Path, event.Info)
		} else {
			fmt.Fprintf(h.writer, "[FILE] %s: unknown\n", event.Path)
		}

	case EventFileExcluded:
		fmt.Fprintf(h.writer, "[SKIP] %s\n", event.Path)
	}
}
