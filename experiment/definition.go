package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition declares an experiment in a definitions file.
type Definition struct {
	Name            string   `yaml:"name"`
	Alternatives    []string `yaml:"alternatives"`
	Force           string   `yaml:"force,omitempty"`
	TrafficFraction *float64 `yaml:"traffic_fraction,omitempty"`
}

// DefinitionFile is the top level document of a definitions file.
type DefinitionFile struct {
	Experiments []Definition `yaml:"experiments"`
}

// Build creates the Experiment described by the definition.
func (d Definition) Build(svc ParticipationService) (*Experiment, error) {
	b := NewBuilder(svc).
		WithName(d.Name).
		WithAlternatives(NewAlternatives(d.Alternatives...)...)

	if d.Force != "" {
		b.WithForcedChoice(NewAlternative(d.Force))
	}

	if d.TrafficFraction != nil {
		if _, err := b.WithTrafficFraction(*d.TrafficFraction); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// LoadDefinitions reads a YAML definitions file and builds every experiment it declares.
func LoadDefinitions(filePath string, svc ParticipationService) ([]*Experiment, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	return ParseDefinitions(data, svc)
}

// ParseDefinitions builds the experiments declared in a YAML document. The first invalid
// definition aborts parsing and is identified in the returned error.
func ParseDefinitions(data []byte, svc ParticipationService) ([]*Experiment, error) {
	var file DefinitionFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Experiments))
	exps := make([]*Experiment, 0, len(file.Experiments))
	for i, d := range file.Experiments {
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("experiment %d (%s): %w", i, d.Name, ErrDuplicateExperiment)
		}

		e, err := d.Build(svc)
		if err != nil {
			return nil, fmt.Errorf("experiment %d (%s): %w", i, d.Name, err)
		}

		seen[d.Name] = struct{}{}
		exps = append(exps, e)
	}

	return exps, nil
}

// FindByName returns the experiment with the given name, if present.
func FindByName(exps []*Experiment, name string) (*Experiment, bool) {
	for _, e := range exps {
		if e.Name() == name {
			return e, true
		}
	}

	return nil, false
}
