// Package stream provides the change-event primitive used throughout the
// library: independent typed channels that broadcast synchronously to all
// current subscribers.
//
// Entities expose two streams (lifecycle and property), collections one.
// Delivery is strictly in subscription order and happens within the call
// stack of Emit; nothing is buffered or deferred.
//
// Unsubscription is explicit via the handle returned by Subscribe. A handler
// that is never unsubscribed stays referenced for the lifetime of the
// stream.
package stream
