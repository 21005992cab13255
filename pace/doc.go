// Package pace turns an algorithm run into an animation: it numbers the
// snapshot steps, suspends between them for a configurable delay, and stops
// the run as soon as its context is cancelled.
//
// Two consumption styles are offered:
//
//   - callback: an algorithm calls Pacer.Tick after each mutating step and
//     hands it a closure that publishes the snapshot;
//   - stream:   Run starts the algorithm on a goroutine and exposes the
//     snapshots as a channel (or an iter.Seq), ending with Err.
//
// A zero delay never sleeps, which is what tests and headless exports use.
package pace
