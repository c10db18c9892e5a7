// Package pkg provides the core libraries for notifstack, a sizing
// calculator for notification stacks.
//
// # Overview
//
// notifstack answers two questions about a vertically scrolling stack of
// rows with a trailing shelf: how many rows fit in the available space, and
// how tall the stack is once that many rows and the shelf are laid out. The
// pkg directory is organized into three areas:
//
//  1. Domain logic: [stack], [lockstate], [dimens] and [sizecalc]
//  2. Documents and output: [scenario] and [sink]
//  3. Infrastructure: [cache], [config], [observability], [pipeline] and [server]
//
// # Architecture
//
// The typical data flow through notifstack:
//
//	scenario.toml / JSON request body
//	         ↓
//	    [scenario] package (decode + validate)
//	         ↓
//	    [sizecalc] package (count, height, per-row plan)
//	         ↓
//	    [sink] package (JSON, SVG, text)
//
// [pipeline.Runner] ties these together with a result cache, and
// [server] exposes the runner over HTTP.
//
// # Quick Start
//
//	sc, err := scenario.Load("scenario.toml")
//	if err != nil {
//	    return err
//	}
//	res := dimens.Defaults()
//	calc := sc.Calculator(res)
//	count := calc.ComputeMaxCount(sc.Stack(res), sc.Budget, sc.Lock)
//
// The calculator is pure: it never logs, caches or performs I/O. Everything
// else in this directory exists to feed it input and to present its output.
//
// [stack]: github.com/matzehuels/notifstack/pkg/stack
// [lockstate]: github.com/matzehuels/notifstack/pkg/lockstate
// [dimens]: github.com/matzehuels/notifstack/pkg/dimens
// [sizecalc]: github.com/matzehuels/notifstack/pkg/sizecalc
// [scenario]: github.com/matzehuels/notifstack/pkg/scenario
// [sink]: github.com/matzehuels/notifstack/pkg/sink
// [cache]: github.com/matzehuels/notifstack/pkg/cache
// [config]: github.com/matzehuels/notifstack/pkg/config
// [observability]: github.com/matzehuels/notifstack/pkg/observability
// [pipeline]: github.com/matzehuels/notifstack/pkg/pipeline
// [server]: github.com/matzehuels/notifstack/pkg/server
// [pipeline.Runner]: github.com/matzehuels/notifstack/pkg/pipeline#Runner
package pkg
