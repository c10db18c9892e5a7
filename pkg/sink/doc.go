// Package sink renders a computed [sizecalc.Plan] into output formats.
//
//   - JSON: the full plan with per-row costs, for tools and the HTTP API
//   - SVG: a to-scale drawing of the stack, the shelf and both budget lines
//   - Text: a plain table for terminals and logs
//
// Renderers are pure functions of the plan and their options. They are safe
// to call concurrently.
//
//	svg := sink.RenderSVG(plan,
//	    sink.WithTitle("lock screen"),
//	    sink.WithWidth(320),
//	)
package sink
