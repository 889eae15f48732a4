// package editor implements the program editing model: per-field validation
// state, the asynchronous availability checker, the editable exercise-table
// row controller, and the program model composing them.
//
// The model is mutated only from its owning view's event loop. The three
// asynchronous boundaries (availability checks, program load, save) hand
// back plain values; helpers like [Apply] guard against stale responses so
// a slow round-trip can never clobber newer input.
package editor
