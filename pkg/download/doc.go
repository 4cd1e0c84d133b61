// Package download provides the event types and a callback-backed handler
// builder for the download surface of an embedded browser engine.
//
// The engine owns downloads end to end: it decides when to invoke the
// handler, on which thread, and in which order. This package only supplies
// the Handler object the engine calls into. A Handler is assembled from
// optional callbacks via Builder, or from one of the preset factories
// (UseFolder, PromptUser) that wire a fixed destination policy.
//
// Built handlers are immutable and safe for concurrent invocation, provided
// the registered callbacks are themselves safe to invoke concurrently.
package download
