// Package poet holds the Kelly persona prompt and the deterministic local
// fallback poem used when no remote attempt yields usable text.
package poet
