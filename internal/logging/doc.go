// Package logging builds slog loggers with the repository's two output
// formats: a human console format ("TIMESTAMP LEVEL component: msg k=v")
// and JSON with normalized ts/level/msg keys.
package logging
