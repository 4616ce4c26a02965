// Package registry defines the registry collaborator the reconciliation
// loop consumes: per-kind persisted listings scoped to a project, and a
// single apply call that reconciles registry state in one shot.
//
// Two implementations are provided. FileStore persists the whole registry as
// one YAML document, written atomically via a temp file and rename. Memory
// keeps the same contract in a mutex-guarded map and backs the tests.
package registry
