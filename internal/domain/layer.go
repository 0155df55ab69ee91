package domain

import (
	"fmt"
	"strings"
)

// Layer is an architectural grouping of generated files.
type Layer string

const (
	LayerDomain         Layer = "domain"
	LayerService        Layer = "service"
	LayerInfrastructure Layer = "infrastructure"
	LayerApplication    Layer = "application"
)

// Layers lists every layer in generation order.
var Layers = []Layer{
	LayerDomain,
	LayerService,
	LayerInfrastructure,
	LayerApplication,
}

// GenerateOptions holds the layer selection flags of the generate command.
// The flags are independent; Includes resolves them into a decision.
type GenerateOptions struct {
	SkipDomain         bool `json:"skip_domain,omitempty"`
	SkipInfrastructure bool `json:"skip_infrastructure,omitempty"`
	SkipApplication    bool `json:"skip_application,omitempty"`
	OnlyDomain         bool `json:"only_domain,omitempty"`
	OnlyInfrastructure bool `json:"only_infrastructure,omitempty"`
	OnlyApplication    bool `json:"only_application,omitempty"`
}

// Includes reports whether layer l is generated under these options.
// A layer is included when its only flag is set, or when it is not skipped
// and no other layer's only flag is set. The service layer follows the
// domain layer.
func (o GenerateOptions) Includes(l Layer) bool {
	switch l {
	case LayerDomain, LayerService:
		return o.OnlyDomain || (!o.SkipDomain && !o.OnlyInfrastructure && !o.OnlyApplication)
	case LayerInfrastructure:
		return o.OnlyInfrastructure || (!o.SkipInfrastructure && !o.OnlyDomain && !o.OnlyApplication)
	case LayerApplication:
		return o.OnlyApplication || (!o.SkipApplication && !o.OnlyDomain && !o.OnlyInfrastructure)
	default:
		return false
	}
}

// IncludedLayers returns the included layers in generation order.
func (o GenerateOptions) IncludedLayers() []Layer {
	var out []Layer
	for _, l := range Layers {
		if o.Includes(l) {
			out = append(out, l)
		}
	}
	return out
}

// ParseLayer converts a user-supplied layer name. "infra" and "app" are
// accepted as short forms.
func ParseLayer(name string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "domain":
		return LayerDomain, nil
	case "service":
		return LayerService, nil
	case "infrastructure", "infra":
		return LayerInfrastructure, nil
	case "application", "app":
		return LayerApplication, nil
	}
	return "", fmt.Errorf("unknown layer %q (valid: domain, infrastructure, application)", name)
}

// OptionsFromLayers builds GenerateOptions from an optional "only" layer and
// a list of skipped layers. The service layer cannot be selected on its own.
func OptionsFromLayers(only string, skip []string) (GenerateOptions, error) {
	var opts GenerateOptions

	if only != "" {
		l, err := ParseLayer(only)
		if err != nil {
			return opts, err
		}
		switch l {
		case LayerDomain:
			opts.OnlyDomain = true
		case LayerInfrastructure:
			opts.OnlyInfrastructure = true
		case LayerApplication:
			opts.OnlyApplication = true
		default:
			return opts, fmt.Errorf("layer %q is generated with the domain layer and cannot be selected alone", l)
		}
	}

	for _, name := range skip {
		l, err := ParseLayer(name)
		if err != nil {
			return opts, err
		}
		switch l {
		case LayerDomain, LayerService:
			opts.SkipDomain = true
		case LayerInfrastructure:
			opts.SkipInfrastructure = true
		case LayerApplication:
			opts.SkipApplication = true
		}
	}

	return opts, nil
}
