// Package store defines the persistence interfaces for tasks and habits
// together with the shared error taxonomy. The interfaces keep handlers
// independent of the storage backend; the in-memory implementation lives in
// platform/memstore and a persistent one would implement the same contracts.
package store
