// Package domain contains the core business entities of the task manager:
// users, the folders they own, and the tasks those folders contain. It is
// independent of any storage engine or delivery mechanism.
package domain
