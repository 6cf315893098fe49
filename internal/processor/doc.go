// Package processor contains the application logic behind the learner
// commands. It coordinates the phrase store, machine translation, batch
// import, Anki export, archiving and quiz sessions.
package processor
