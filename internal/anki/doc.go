// Package anki exports the phrase collection for import into Anki, either
// as a CSV file or as an .apkg package with forward and reverse cards.
package anki
