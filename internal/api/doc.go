// Package api holds the HTTP handlers for users, addresses, posts and login.
// Handlers decode and validate requests, enforce ownership of authenticated
// mutations, call the services and render the success or error envelope
// defined in the shared package.
package api
