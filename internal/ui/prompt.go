package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter asks the user for input. The production implementation is
// huh-backed; tests substitute a fake.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(title string) (bool, error)

	// Input asks for a free-form string value.
	Input(title, placeholder string) (string, error)

	// Select presents labeled options and returns the chosen value.
	Select(title string, options []SelectOption) (string, error)
}

// SelectOption is one entry in a Select menu.
type SelectOption struct {
	Label string
	Value string
}

// huhPrompter implements Prompter with charmbracelet/huh forms.
type huhPrompter struct {
	theme *huh.Theme
}

// NewPrompter creates the production Prompter. Color mode picks the
// themed or base huh rendering.
func NewPrompter(color bool) Prompter {
	t := huh.ThemeBase()
	if color {
		primary := lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
		t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	}
	return &huhPrompter{theme: t}
}

func (p *huhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

// Confirm asks a yes/no question; the default answer is No.
func (p *huhPrompter) Confirm(title string) (bool, error) {
	var answer bool
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := p.run(field); err != nil {
		return false, err
	}
	return answer, nil
}

// Input asks for a free-form string value.
func (p *huhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if err := p.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Select presents labeled options and returns the chosen value.
// huh handles unrecognized input by re-prompting until a valid choice.
func (p *huhPrompter) Select(title string, options []SelectOption) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected)
	if err := p.run(field); err != nil {
		return "", err
	}
	return selected, nil
}
