// Package builder implements the execute phase: it walks a plan tree and
// ensures one remote wiki page per entry, directories becoming empty
// container pages and files becoming content pages with transformed bodies.
//
// The walk is top-down in lexical order, so a directory's page is always
// recorded before any of its children resolve their parent. Page reuse is
// decided by exact title plus immediate parent, which makes re-running a
// build against the same space idempotent for container pages.
package builder
