// Package repo discovers declared objects in a feature repository. Scan
// enumerates the definition files under a root (minus the ignore set) as a
// sorted, deterministic sequence; Parse loads them, in scan order, into a
// fresh model.ParsedRepo.
//
// The repo root is always threaded through explicitly; nothing here reads or
// changes the process working directory.
package repo
