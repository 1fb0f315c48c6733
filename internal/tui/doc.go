// Package tui implements the interactive chat screen: a textinput prompt,
// a viewport transcript, and a spinner while a reply is in flight.
package tui
