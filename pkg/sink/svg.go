package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

const (
	defaultSVGWidth = 360.0
	svgMargin       = 24.0
	svgLabelGutter  = 110.0
)

var sectionPalette = []string{"#4e79a7", "#59a14f", "#edc948", "#b07aa1", "#76b7b2", "#ff9da7"}

const svgCSS = `
    .row { stroke: #333; stroke-width: 1; }
    .row.rejected { fill: none; stroke: #999; stroke-dasharray: 4 3; }
    .shelf { fill: #bab0ac; stroke: #333; stroke-width: 1; }
    .budget { stroke: #e15759; stroke-width: 1.5; stroke-dasharray: 6 4; }
    text { font-family: sans-serif; font-size: 11px; fill: #222; }
    .dim { fill: #777; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width float64
	scale float64
	title string
}

func WithWidth(w float64) SVGOption    { return func(r *svgRenderer) { r.width = w } }
func WithScale(s float64) SVGOption    { return func(r *svgRenderer) { r.scale = s } }
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG draws the accepted rows, the first rejected row, the shelf and
// the notification and combined budget lines, all to scale.
func RenderSVG(p sizecalc.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{width: defaultSVGWidth, scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	steps := visibleSteps(p)
	extent := p.Height
	for _, s := range steps {
		extent = math.Max(extent, s.Cumulative)
	}
	for _, b := range []float64{p.Budget.Notifications, p.Budget.Total()} {
		if !math.IsInf(b, 0) && b < math.MaxFloat64/2 {
			extent = math.Max(extent, b)
		}
	}

	top := svgMargin
	if r.title != "" {
		top += 18
	}
	canvasW := r.width + svgLabelGutter + 2*svgMargin
	canvasH := top + extent*r.scale + svgMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		canvasW, canvasH, canvasW, canvasH)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgCSS)
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f">%s</text>`+"\n", svgMargin, svgMargin, html.EscapeString(r.title))
	}

	colors := sectionColors(steps)
	for _, s := range steps {
		renderStep(&buf, &r, top, s, colors[s.Section])
	}
	renderShelf(&buf, &r, top, p)
	renderBudgetLine(&buf, &r, top, p.Budget.Notifications, "notifications")
	renderBudgetLine(&buf, &r, top, p.Budget.Total(), "notifications + shelf")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// visibleSteps returns the accepted steps plus the first rejected one.
func visibleSteps(p sizecalc.Plan) []sizecalc.Step {
	n := p.Count
	if n < len(p.Steps) {
		n++
	}
	return p.Steps[:n]
}

func sectionColors(steps []sizecalc.Step) map[string]string {
	colors := make(map[string]string)
	for _, s := range steps {
		if _, ok := colors[s.Section]; !ok {
			colors[s.Section] = sectionPalette[len(colors)%len(sectionPalette)]
		}
	}
	return colors
}

func renderStep(buf *bytes.Buffer, r *svgRenderer, top float64, s sizecalc.Step, color string) {
	y := top + (s.Cumulative-s.Content)*r.scale
	h := s.Content * r.scale
	id := html.EscapeString(s.RowID)

	if s.Accepted {
		fmt.Fprintf(buf, `  <rect id="row-%s" class="row" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			id, svgMargin, y, r.width, h, color)
	} else {
		fmt.Fprintf(buf, `  <rect id="row-%s" class="row rejected" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
			id, svgMargin, y, r.width, h)
	}

	label := id
	if s.Sticky {
		label += " (sticky)"
	}
	class := ""
	if !s.Accepted {
		class = ` class="dim"`
	}
	fmt.Fprintf(buf, `  <text%s x="%.1f" y="%.1f">%s %g</text>`+"\n",
		class, svgMargin+6, y+math.Min(h, 14)-2, label, s.Content)
}

func renderShelf(buf *bytes.Buffer, r *svgRenderer, top float64, p sizecalc.Plan) {
	h := p.Budget.ShelfHeight * r.scale
	y := top + p.Height*r.scale - h
	fmt.Fprintf(buf, `  <rect id="shelf" class="shelf" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		svgMargin, y, r.width, h)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f">shelf, total %g</text>`+"\n",
		svgMargin+r.width+6, y+math.Min(h, 14)-2, p.Height)
}

func renderBudgetLine(buf *bytes.Buffer, r *svgRenderer, top, value float64, label string) {
	if math.IsInf(value, 0) || value >= math.MaxFloat64/2 {
		return
	}
	y := top + value*r.scale
	fmt.Fprintf(buf, `  <line class="budget" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
		svgMargin, y, svgMargin+r.width, y)
	fmt.Fprintf(buf, `  <text class="dim" x="%.1f" y="%.1f">%s %g</text>`+"\n",
		svgMargin+r.width+6, y-2, label, value)
}
