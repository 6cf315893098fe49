// Package archive moves the phrase data directory aside so a fresh
// collection can be started.
package archive
