// Package services holds shared plumbing for the external integrations:
// context helpers that stamp a correlation identifier on every reply
// request so log lines from the attempt loop and the HTTP client can be
// tied together.
package services
