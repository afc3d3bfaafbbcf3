package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// optionsBuilder collects option layers ordered from highest to lowest
// priority. build merges them so the first non-empty value of each field
// wins.
type optionsBuilder struct {
	layers []*Options
	err    error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		layers: make([]*Options, 0, 3),
	}
}

func (b *optionsBuilder) build() (*Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building options: %w", b.err)
	}

	opts := new(Options)
	for _, layer := range b.layers {
		if err := mergo.Merge(opts, layer); err != nil {
			return nil, fmt.Errorf("error merging options: %w", err)
		}
	}

	if opts.RuntimePath == "" && opts.ConfigPath != "" {
		opts.RuntimePath = RuntimePathFor(opts.ConfigPath)
	}

	return opts, opts.validate()
}

func (b *optionsBuilder) withFlags(flagOpts *Options) *optionsBuilder {
	if flagOpts != nil {
		b.layers = append(b.layers, flagOpts)
	}
	return b
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	envOpts := &Options{}
	if err := parseEnv(envOpts); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envOpts)
	return b
}

func (b *optionsBuilder) withDefaults() *optionsBuilder {
	b.layers = append(b.layers, DefaultOptions())
	return b
}

// applyTo merges the main file layer over current. Endpoint fields the file
// leaves unset keep their current values.
func (l *mainLayer) applyTo(current Snapshot) (Snapshot, error) {
	endpoints := l.endpoints
	if err := mergo.Merge(&endpoints, current.Endpoints); err != nil {
		return Snapshot{}, fmt.Errorf("%w: merging endpoints: %w", ErrConfigParse, err)
	}

	next := Snapshot{
		Endpoints:     endpoints,
		SimMode:       current.SimMode,
		SimModeSource: current.SimModeSource,
	}
	if l.simMode != nil {
		next.SimMode = *l.simMode
		next.SimModeSource = SourceMain
	}

	if err := next.validate(); err != nil {
		return Snapshot{}, err
	}
	return next, nil
}
