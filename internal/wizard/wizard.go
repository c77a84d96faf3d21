// Package wizard asks the questions that produce a new components.json.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerdboi-ui/nerdboi-ui/internal/project"
)

// ErrCancelled is returned when the user declines to overwrite an existing
// components.json.
var ErrCancelled = errors.New("init cancelled")

var (
	styles     = []string{"default", "new-york"}
	baseColors = []string{"slate", "gray", "zinc", "neutral", "stone"}
)

// Run prompts on r/w and returns the chosen configuration. exists tells the
// wizard that components.json is already present, in which case the user
// must confirm the overwrite first. Empty answers select the default shown
// in brackets.
func Run(r io.Reader, w io.Writer, exists bool) (*project.Config, error) {
	p := &prompter{reader: bufio.NewReader(r), w: w}
	def := project.Default()

	if exists {
		ok, err := p.confirm("components.json already exists. Overwrite?", false)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
	}

	cfg := project.Default()
	var err error

	if cfg.Style, err = p.choose("Which style would you like to use?", styles, def.Style); err != nil {
		return nil, err
	}
	if cfg.Tailwind.BaseColor, err = p.choose("Which color would you like to use as base color?", baseColors, def.Tailwind.BaseColor); err != nil {
		return nil, err
	}
	if cfg.Tailwind.CSSVariables, err = p.confirm("Would you like to use CSS variables for colors?", def.Tailwind.CSSVariables); err != nil {
		return nil, err
	}
	if cfg.Aliases.Components, err = p.input("Where would you like to install components?", def.Aliases.Components); err != nil {
		return nil, err
	}
	if cfg.Aliases.Utils, err = p.input("Where is your utils file?", def.Aliases.Utils); err != nil {
		return nil, err
	}
	if cfg.Tailwind.Config, err = p.input("Where is your tailwind.config.js located?", def.Tailwind.Config); err != nil {
		return nil, err
	}
	if cfg.Tailwind.CSS, err = p.input("Where is your global CSS file?", def.Tailwind.CSS); err != nil {
		return nil, err
	}

	return cfg, nil
}

type prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// readLine returns the next trimmed answer. Input that ends without a
// newline still counts as an answer; running out of input does not.
func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// choose presents a numbered list. The answer may be the number or the item
// itself; anything else asks again.
func (p *prompter) choose(prompt string, items []string, def string) (string, error) {
	for {
		fmt.Fprintf(p.w, "\n%s\n", prompt)
		for i, item := range items {
			fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
		}
		fmt.Fprintf(p.w, "Enter number [1-%d] (%s): ", len(items), def)

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return def, nil
		}
		if num, err := strconv.Atoi(answer); err == nil && num >= 1 && num <= len(items) {
			return items[num-1], nil
		}
		for _, item := range items {
			if strings.EqualFold(answer, item) {
				return item, nil
			}
		}
		fmt.Fprintf(p.w, "Invalid selection %q: choose 1-%d\n", answer, len(items))
	}
}

func (p *prompter) confirm(prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.w, "\n%s (%s): ", prompt, hint)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.w, "Please answer y or n\n")
	}
}

func (p *prompter) input(prompt, def string) (string, error) {
	fmt.Fprintf(p.w, "\n%s (%s): ", prompt, def)
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
