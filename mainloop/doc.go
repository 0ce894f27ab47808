// Package mainloop is a single-goroutine event scheduler.
//
// A Loop multiplexes channel readiness watches and one-shot or repeating
// timers. Each call to Iteration blocks (optionally) until something is
// ready and runs exactly that batch of callbacks. Wakeup interrupts a
// blocking wait and Invoke hands work over from other goroutines, so all
// state touched by callbacks is owned by the goroutine driving the loop.
package mainloop
