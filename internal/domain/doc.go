// Package domain contains the core entities of the tracker (tasks and
// habits) along with their validation rules and partial-update semantics,
// independent of any storage or delivery mechanism.
package domain
