package cli

import (
	"fmt"
	"strings"

	"tasklist/internal/domain"
	"tasklist/internal/logging"
	"tasklist/internal/validation"
)

// Prompter asks for one value at a time and keeps asking until the answer
// is valid. The only other way out is closed input.
type Prompter struct {
	console        *Console
	priorityPrompt string
}

// NewPrompter creates a prompter on console.
func NewPrompter(console *Console) *Prompter {
	var letters []string
	for _, priority := range domain.ValidPriorities() {
		letters = append(letters, priority.Abbreviation())
	}
	return &Prompter{
		console:        console,
		priorityPrompt: fmt.Sprintf(msgPriorityPrompt, strings.Join(letters, ", ")),
	}
}

// AskPriority asks for a priority letter. Invalid letters are asked again
// without a message.
func (p *Prompter) AskPriority() (domain.Priority, error) {
	for {
		answer, err := p.console.Ask(p.priorityPrompt)
		if err != nil {
			return "", err
		}
		priority, err := validation.ParsePriority(answer)
		if err == nil {
			return priority, nil
		}
		logging.Debugf("rejected priority: %v", err)
	}
}

// AskDate asks for a calendar date.
func (p *Prompter) AskDate() (domain.Date, error) {
	for {
		answer, err := p.console.Ask(msgDatePrompt)
		if err != nil {
			return domain.Date{}, err
		}
		date, err := validation.ParseDate(answer)
		if err == nil {
			return date, nil
		}
		logging.Debugf("rejected date: %v", err)
		p.console.Println(msgInvalidDate)
	}
}

// AskTime asks for a time of day.
func (p *Prompter) AskTime() (domain.Clock, error) {
	for {
		answer, err := p.console.Ask(msgTimePrompt)
		if err != nil {
			return domain.Clock{}, err
		}
		clock, err := validation.ParseTime(answer)
		if err == nil {
			return clock, nil
		}
		logging.Debugf("rejected time: %v", err)
		p.console.Println(msgInvalidTime)
	}
}

// AskActions collects trimmed lines until a blank one. A blank first line
// yields no actions and prints the blank-task notice.
func (p *Prompter) AskActions() ([]string, error) {
	p.console.Println(msgActionsPrompt)

	var actions []string
	for {
		line, err := p.console.ReadLine()
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			actions = append(actions, line)
			continue
		}
		if len(actions) == 0 {
			p.console.Println(msgBlankTask)
		}
		return actions, nil
	}
}

// AskIndex asks for a 1-based task number between 1 and size.
func (p *Prompter) AskIndex(size int) (int, error) {
	prompt := fmt.Sprintf(msgIndexPrompt, size)
	for {
		answer, err := p.console.Ask(prompt)
		if err != nil {
			return 0, err
		}
		index, err := validation.ParseIndex(answer, size)
		if err == nil {
			return index, nil
		}
		logging.Debugf("rejected task number: %v", err)
		p.console.Println(msgInvalidIndex)
	}
}

// AskField asks which part of a task to edit.
func (p *Prompter) AskField() (domain.Field, error) {
	for {
		answer, err := p.console.Ask(msgFieldPrompt)
		if err != nil {
			return "", err
		}
		if field, ok := domain.ParseField(answer); ok {
			return field, nil
		}
		p.console.Println(msgInvalidField)
	}
}
