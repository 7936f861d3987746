// Package watch implements the alert watch face on top of a host facade.
//
// The face shows the time in a single centered label. Any of the four
// buttons raises an alert: the label switches to "ALERT!" and {0: 1} is
// submitted to the messaging outbox. An acknowledgement clears the alert and
// restores the time; a failure shows "ERROR" and leaves the alert raised, so
// the clock stays hidden until a later press is acknowledged.
//
// App owns the lifecycle (Uninitialized, Running, Terminated), the window
// and its label. The host drives it from a single event loop through Click,
// MinuteTick and Deliver; none of the types here are safe for concurrent use.
package watch
