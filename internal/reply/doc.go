// Package reply implements the attempt controller behind every Kelly
// answer.
//
// # Attempt Plan
//
// A request is expanded into a model-major sequence of (model, paraphrase)
// pairs: the preferred model first, then the canonical fast model unless the
// preferred identifier is already a fast variant, each crossed with three
// fixed paraphrases and truncated to the configured attempt budget.
//
// # Semantics
//
// First success wins: the first attempt whose response yields extractable
// text ends the sequence with a remote-tagged result. Transport errors,
// safety blocks, and empty responses all consume one slot, apply a short
// fixed backoff, and move on. When the budget is exhausted the local
// fallback poem is returned — the controller never surfaces an error for a
// submitted prompt.
//
// The sleeper is injectable so tests run without real delays.
package reply
