// Package stderr writes human-oriented output for command-line tools:
// leveled messages, boxes, banners, tables, bitmask flag tables and
// hierarchical call traces.
//
// A [Logger] writes to os.Stderr by default and reads its mode flags from
// the environment once, at construction:
//
//	log := stderr.New()
//	log.Info("starting")
//	log.Okay("done")
//
// # Levels
//
// Error, Warn, Info, Okay and Note are always shown. Debug, DevLog, Trace
// and Magic/Silly are shown only when DEBUG_MODE, DEV_MODE, TRACE_MODE or
// SILLY_MODE is present in the environment (or enabled with the matching
// setter). QUIET_MODE silences everything except Error and [Logger.Fatal].
// Leveled calls discard write errors; layout calls return them.
//
// # Layout
//
// [Logger.Box], [Logger.Banner], [Logger.SimpleTable], [Logger.Columns],
// [Logger.List] and [PrintFlagTable] render a complete record in memory and
// write it at once. Widths are counted in code points, so wide and combining
// characters may misalign borders.
//
// [FlagTable] shows a bitmask as bit index, value and label rows:
//
//	   ┌────┬────┬────┐
//	   │ 2  │ 1  │ 0  │
//	   ├────┼────┼────┤
//	   │ 1  │ 0  │ 1  │
//	   ├────┼────┼────┤
//	   │ C  │ B  │ A  │
//	   └────┴────┴────┘
//
// When a single block is wider than the terminal, the labels are split into
// two blocks of ceil(n/2) and the rest.
//
// # Tracing
//
// [Logger.TraceFn] groups messages by a caller-supplied function name,
// opening a new branch whenever the name changes. [Logger.TraceScope]
// returns a guard for use with defer that records entry and exit.
//
// # Context
//
// [Logger.SetContext] prints a banner only when the context changes.
//
// # Confirmation
//
// [Logger.Confirm] and [Logger.ConfirmBuilder] ask y/n/q questions on
// standard input. Quiet mode answers [Yes] without asking; a non-terminal
// input yields [ErrNonInteractive].
//
// # Concurrency
//
// A Logger is not safe for concurrent use. [Shared] serializes access and
// [Default] returns a process-wide instance.
package stderr
