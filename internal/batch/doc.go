// Package batch reads and writes plain text phrase lists, one
// "original = translated" pair per line.
package batch
