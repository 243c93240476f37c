// Package trial runs a single slider survey trial: it renders the form onto a
// surface, tracks slider interaction for submit gating and emits exactly one
// result when the participant submits.
//
// A Controller owns every piece of per-trial state, so independent trials
// (for example one per HTTP session) never interfere.
package trial
