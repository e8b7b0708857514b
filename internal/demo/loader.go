package demo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/chatpane/internal/errors"
	"github.com/zhubert/chatpane/internal/layout"
	"github.com/zhubert/chatpane/internal/message"
	"github.com/zhubert/chatpane/internal/ui"
)

// scenarioFile is the on-disk form of a Scenario.
type scenarioFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Width       int        `yaml:"width,omitempty"`
	Height      int        `yaml:"height,omitempty"`
	Setup       *setupFile `yaml:"setup,omitempty"`
	Steps       []stepFile `yaml:"steps"`
}

type setupFile struct {
	User           message.User      `yaml:"user"`
	Messages       []message.Message `yaml:"messages,omitempty"`
	Earlier        []message.Message `yaml:"earlier,omitempty"`
	Animated       *bool             `yaml:"animated,omitempty"`
	Inverted       *bool             `yaml:"inverted,omitempty"`
	LoadEarlier    bool              `yaml:"load_earlier,omitempty"`
	Locale         string            `yaml:"locale,omitempty"`
	Platform       string            `yaml:"platform,omitempty"`
	KeyboardHeight int               `yaml:"keyboard_height,omitempty"`
}

type stepFile struct {
	Action      string            `yaml:"action"`
	Description string            `yaml:"description,omitempty"`
	Key         string            `yaml:"key,omitempty"`
	Text        string            `yaml:"text,omitempty"`
	Duration    string            `yaml:"duration,omitempty"`
	Height      int               `yaml:"height,omitempty"`
	Phase       string            `yaml:"phase,omitempty"`
	Messages    []message.Message `yaml:"messages,omitempty"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ScenarioLoadFailed(path, err)
	}
	s, err := Parse(data)
	if err != nil {
		if errors.Is(err, errors.KindInvalid) {
			return nil, err
		}
		return nil, errors.ScenarioLoadFailed(path, err)
	}
	return s, nil
}

// Parse decodes a YAML scenario and validates it.
func Parse(data []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	s := &Scenario{
		Name:        f.Name,
		Description: f.Description,
		Width:       f.Width,
		Height:      f.Height,
	}
	if f.Setup != nil {
		setup, err := f.Setup.toSetup()
		if err != nil {
			return nil, err
		}
		s.Setup = setup
	}
	for i, sf := range f.Steps {
		step, err := sf.toStep(i)
		if err != nil {
			return nil, err
		}
		s.Steps = append(s.Steps, step)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (f *setupFile) toSetup() (*ScenarioSetup, error) {
	setup := DefaultSetup()
	if f.User.ID != "" {
		setup.User = f.User
	}
	setup.Messages = f.Messages
	setup.Earlier = f.Earlier
	if f.Animated != nil {
		setup.Animated = *f.Animated
	}
	if f.Inverted != nil {
		setup.Inverted = *f.Inverted
	}
	setup.LoadEarlier = f.LoadEarlier
	if f.Locale != "" {
		setup.Locale = f.Locale
	}
	platform, err := layout.ParsePlatform(f.Platform)
	if err != nil {
		return nil, errors.ScenarioInvalid("setup.platform", err.Error())
	}
	setup.Platform = platform
	if f.KeyboardHeight > 0 {
		setup.KeyboardHeight = f.KeyboardHeight
	}
	return setup, nil
}

func (f stepFile) toStep(i int) (Step, error) {
	step := Step{
		Description: f.Description,
		Key:         f.Key,
		Text:        f.Text,
		Height:      f.Height,
		Messages:    f.Messages,
	}
	switch strings.ToLower(f.Action) {
	case "wait":
		step.Type = StepWait
		d, err := time.ParseDuration(f.Duration)
		if err != nil {
			return Step{}, errors.ScenarioInvalid(stepField(i, "duration"), err.Error())
		}
		step.Duration = d
	case "key":
		step.Type = StepKey
	case "type":
		step.Type = StepTypeText
	case "layout":
		step.Type = StepLayout
	case "keyboard":
		step.Type = StepKeyboard
		phase, err := parsePhase(f.Phase)
		if err != nil {
			return Step{}, errors.ScenarioInvalid(stepField(i, "phase"), err.Error())
		}
		step.Phase = phase
	case "send":
		step.Type = StepSend
	case "messages":
		step.Type = StepMessages
	case "capture":
		step.Type = StepCapture
	case "annotate":
		step.Type = StepAnnotate
		step.Annotation = f.Text
	default:
		return Step{}, errors.ScenarioInvalid(stepField(i, "action"), fmt.Sprintf("unknown action %q", f.Action))
	}
	return step, nil
}

func parsePhase(name string) (ui.KeyboardPhase, error) {
	for _, p := range []ui.KeyboardPhase{ui.KeyboardWillShow, ui.KeyboardDidShow, ui.KeyboardWillHide, ui.KeyboardDidHide} {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}
	return ui.KeyboardWillShow, fmt.Errorf("unknown keyboard phase %q", name)
}
