// Package quiz runs an interactive drill over stored phrases: it shows one
// side of a random phrase, reads the learner's answer and checks it.
package quiz
