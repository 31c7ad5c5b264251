// Package sqlite persists the chat log in a SQLite database with
// embedded schema migrations.
package sqlite
