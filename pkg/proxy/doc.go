// Package proxy maintains the process-wide weak mapping from issued proxy
// handles to their backing real containers, and rewrites trap specs so
// handlers receive the real container alongside the handle they were
// invoked on.
package proxy
