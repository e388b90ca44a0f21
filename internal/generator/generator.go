// Package generator builds silly commit messages from name and template lists.
package generator

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Generator picks a name and a template and fills in the placeholders.
type Generator struct {
	names     []string
	templates []string
	logger    *zap.Logger
	rng       Rand
	count     uint64
}

// New creates a Generator seeded from the clock.
func New(names, templates []string, logger *zap.Logger) *Generator {
	return NewWithRng(names, templates, logger, NewRand(0))
}

// NewWithRng creates a Generator with a custom random source (for testing).
func NewWithRng(names, templates []string, logger *zap.Logger, rng Rand) *Generator {
	return &Generator{
		names:     names,
		templates: templates,
		logger:    logger,
		rng:       rng,
	}
}

// Generate returns one message.
func (g *Generator) Generate() (string, error) {
	name, err := Choose(g.rng, g.names)
	if err != nil {
		return "", fmt.Errorf("select name: %w", err)
	}
	template, err := Choose(g.rng, g.templates)
	if err != nil {
		return "", fmt.Errorf("select template: %w", err)
	}

	msg := Substitute(g.rng, template, name)
	g.count++

	g.logger.Debug("generated",
		zap.Uint64("count", g.count),
		zap.String("name", name),
		zap.String("template", template),
		zap.String("message", msg),
	)
	return msg, nil
}

// WriteN writes n messages to w, one per line.
func (g *Generator) WriteN(w io.Writer, n int) error {
	for range n {
		msg, err := g.Generate()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return fmt.Errorf("write message: %w", err)
		}
	}
	return nil
}

// Count returns how many messages have been generated.
func (g *Generator) Count() uint64 {
	return g.count
}
