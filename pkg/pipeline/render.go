package pipeline

import (
	"fmt"

	"github.com/matzehuels/notifstack/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func Render(r *Result, formats []string) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			opts := []sink.JSONOption{sink.WithJSONName(r.Scenario), sink.WithJSONHash(r.Hash)}
			if r.Requested != nil {
				opts = append(opts, sink.WithJSONRequested(r.Requested.Count, r.Requested.Height))
			}
			data, err = sink.RenderJSON(r.Plan, opts...)
		case FormatSVG:
			data = sink.RenderSVG(r.Plan, sink.WithTitle(r.Scenario))
		case FormatText:
			data = sink.RenderText(r.Plan)
			if r.Requested != nil {
				data = fmt.Appendf(data, "height of %d rows: %g\n", r.Requested.Count, r.Requested.Height)
			}
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
