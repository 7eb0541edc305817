// Package service implements the application operations behind the HTTP
// handlers: listing and mutating tasks inside folders the caller owns,
// folder management, and user registration and login. Every operation takes
// the authenticated user's ID as an explicit argument.
package service
