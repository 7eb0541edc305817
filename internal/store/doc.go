// Package store defines the persistence interfaces for users, folders and
// tasks. Every scoping filter (owner of a folder, parent folder of a task) is
// an explicit parameter of the call that applies it, so ownership
// enforcement can be audited at the call site.
package store
