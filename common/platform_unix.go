//go:build !darwin && !windows

package common

const (
	defaultHomeLocation = "$HOME/.config/prompter"
)
