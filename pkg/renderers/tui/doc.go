// Package tui renders slider survey trials for terminals and runs them
// interactively through a PromptDriver backed by AlecAivazis/survey.
package tui
