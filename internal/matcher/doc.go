// Package matcher decides whether a learner's answer matches a stored
// phrase. Answers are normalized (case, surrounding whitespace, Polish and
// German diacritics, periods) and may list several comma separated
// sections.
package matcher
