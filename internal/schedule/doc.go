// Package schedule holds the hub's time-triggered tasks and automated
// triggers, and runs the scheduler that dispatches due tasks.
//
// A ScheduledTask pairs a device with a time of day and a closed Action
// descriptor (command name plus optional typed argument). Actions are
// resolved through a fixed dispatch table by the hub — stored text is never
// evaluated as code.
//
// An AutomatedTrigger pairs an opaque condition with an action. The store is
// passive: conditions are recorded and listed but never evaluated.
//
// Tasks and triggers are persisted in SQLite through Repository and served
// from an in-memory cache by Store, mirroring the registry/repository split
// used elsewhere in the codebase.
//
// The Scheduler ticks at a fixed interval (one minute by default) against an
// injectable Clock. On each tick it dispatches every task whose time of day
// equals the current one, then idles until the next tick. Dispatch failures
// are logged and skipped; the loop keeps ticking until its context is
// cancelled or Stop is called. There is no catch-up for missed ticks and no
// deduplication: a task matching on two consecutive ticks fires twice.
package schedule
