package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl+C.
var ErrInterrupted = errors.New("operation interrupted")

type Prompter interface {
	SelectProfile(profiles []string) (string, error)
	Confirm(label string) (bool, error)
}

type selectRunner interface {
	Run() (int, string, error)
}

type confirmRunner interface {
	Run() (string, error)
}

type RealPrompter struct {
	newSelect  func(label string, items []string) selectRunner
	newConfirm func(label string) confirmRunner
}

func NewPrompt() Prompter {
	return &RealPrompter{
		newSelect: func(label string, items []string) selectRunner {
			return &promptui.Select{Label: label, Items: items, Size: 10}
		},
		newConfirm: func(label string) confirmRunner {
			return &promptui.Prompt{Label: label, IsConfirm: true}
		},
	}
}

func (p *RealPrompter) SelectProfile(profiles []string) (string, error) {
	if len(profiles) == 0 {
		return "", errors.New("no profiles to choose from")
	}
	_, selected, err := p.newSelect("Select AWS profile", profiles).Run()
	if err != nil {
		return "", handlePromptError(err)
	}
	return selected, nil
}

// Confirm asks a yes/no question. Answering "no" is not an error.
func (p *RealPrompter) Confirm(label string) (bool, error) {
	result, err := p.newConfirm(label).Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, handlePromptError(err)
	}
	return strings.HasPrefix(strings.ToLower(result), "y"), nil
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nReceived termination signal. Exiting.")
		return ErrInterrupted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
