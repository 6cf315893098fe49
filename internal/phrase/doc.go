// Package phrase defines the Phrase entity: a source and target text pair
// with a short identifier and an optional group tag.
package phrase
