package trace

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects the rendering of emitted events.
type Format uint8

const (
	FormatAuto   Format = iota // pick from the output path's extension
	FormatText                 // one aligned human-readable line per event
	FormatNDJSON               // one JSON object per line
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "text":
		return FormatText, nil
	case "ndjson":
		return FormatNDJSON, nil
	default:
		return FormatAuto, fmt.Errorf("invalid format: %q (expected: auto|text|ndjson)", s)
	}
}

// FormatEvent renders one event as a line, newline included.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

func formatText(ev *Event) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %6d %-10s %-5s %s",
		ev.Time.Format("15:04:05.000000"), ev.Seq, ev.Scope, ev.Kind, ev.Name)
	if ev.SpanID != 0 {
		fmt.Fprintf(&b, " span=%d", ev.SpanID)
		if ev.ParentID != 0 {
			fmt.Fprintf(&b, " parent=%d", ev.ParentID)
		}
	}
	if ev.Kind == KindPoint {
		fmt.Fprintf(&b, " @%d", ev.Offset)
	}
	if ev.Detail != "" {
		fmt.Fprintf(&b, " (%s)", ev.Detail)
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

type jsonEvent struct {
	Time   string `json:"time"`
	Seq    uint64 `json:"seq"`
	Kind   string `json:"kind"`
	Scope  string `json:"scope"`
	Span   uint64 `json:"span,omitempty"`
	Parent uint64 `json:"parent,omitempty"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Offset uint32 `json:"offset,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, err := json.Marshal(jsonEvent{
		Time:   ev.Time.Format("15:04:05.000000"),
		Seq:    ev.Seq,
		Kind:   ev.Kind.String(),
		Scope:  ev.Scope.String(),
		Span:   ev.SpanID,
		Parent: ev.ParentID,
		Name:   ev.Name,
		Detail: ev.Detail,
		Offset: ev.Offset,
	})
	if err != nil {
		return []byte(fmt.Sprintf(`{"error":%q}`+"\n", err.Error()))
	}
	return append(data, '\n')
}
