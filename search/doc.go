// Package search holds the driver surface shared by the restarting (rls) and
// iterated (ils) local search drivers.
//
// It provides:
//   - Options — the configuration bag both drivers accept, with
//     DefaultOptions and Validate.
//   - Output  — pool, counters and elapsed wall time returned by a driver.
//   - Run     — one driver invocation's state: the solution pool, the
//     initial-solution sources, the wall clock, the arity guard, the
//     new-best callback and the narration logger.
//
// Narration goes through go.uber.org/zap. When Options.Logger is nil,
// Verbose=true builds a console logger on stderr (NewLogger) and
// Verbose=false silences the run.
//
// Everything here is single-threaded: a Run is owned by the goroutine that
// called the driver.
package search
