package convert

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sdsc-ordes/catplus-converters/graph"
	"github.com/sdsc-ordes/catplus-converters/models"
)

// ErrUnknownInputType is returned for input types with no registered record.
var ErrUnknownInputType = errors.New("convert: unknown input type")

// InputType names a family of JSON inputs.
type InputType string

const (
	InputSynth   InputType = "synth"
	InputBravo   InputType = "bravo"
	InputHCI     InputType = "hci"
	InputAgilent InputType = "agilent"
)

var registry = map[InputType]func() graph.Value{
	InputSynth:   func() graph.Value { return new(models.Batch) },
	InputBravo:   func() graph.Value { return new(models.BravoBatch) },
	InputHCI:     func() graph.Value { return new(models.CampaignWrapper) },
	InputAgilent: func() graph.Value { return new(models.LiquidChromatographyAggregateDocumentWrapper) },
}

// ParseInputType accepts a registered input type in any case.
func ParseInputType(value string) (InputType, error) {
	t := InputType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := registry[t]; !ok {
		return "", fmt.Errorf("%w %q (known: %s)", ErrUnknownInputType, value, strings.Join(InputTypes(), ", "))
	}
	return t, nil
}

// InputTypes lists the registered input types in sorted order.
func InputTypes() []string {
	names := make([]string, 0, len(registry))
	for t := range registry {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// newRecord returns an empty record for t, ready for decoding.
func newRecord(t InputType) (graph.Value, error) {
	ctor, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownInputType, t)
	}
	return ctor(), nil
}
