// Command kelly is the conversational front-end. It answers questions as
// short styled poems, either one-shot (kelly ask) or interactively
// (kelly chat).
package main
