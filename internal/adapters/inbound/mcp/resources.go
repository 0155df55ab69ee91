package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/makeca/make-ca/internal/adapters/outbound/config"
	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/adapters/outbound/render"
	"github.com/makeca/make-ca/internal/domain"
	"github.com/makeca/make-ca/internal/domain/naming"
)

// entityResource is the payload of make-ca://entities/{name}.
type entityResource struct {
	Formats     domain.EntityNameFormats `json:"formats"`
	Layers      []domain.Layer           `json:"layers"`
	Directories domain.DirectorySet      `json:"directories"`
}

// registerResources registers all make-ca MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. make-ca://config - project configuration
	s.AddResource(
		mcplib.NewResource(
			"make-ca://config",
			"Project Config",
			mcplib.WithResourceDescription("Contents of .make-ca.yaml for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. make-ca://manifest - generated entities
	s.AddResource(
		mcplib.NewResource(
			"make-ca://manifest",
			"Manifest",
			mcplib.WithResourceDescription("Entities generated in the project and their layers"),
			mcplib.WithMIMEType("application/json"),
		),
		handleManifestResource(projectPath),
	)

	// 3. make-ca://templates - built-in template identifiers
	s.AddResource(
		mcplib.NewResource(
			"make-ca://templates",
			"Templates",
			mcplib.WithResourceDescription("Identifiers of the built-in templates, usable as override names"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTemplatesResource(),
	)

	// 4. make-ca://entities/{name} - one generated entity (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"make-ca://entities/{name}",
			"Entity",
			mcplib.WithTemplateDescription("Name forms, generated layers and directories of one entity"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleEntityResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonContents(request.Params.URI, cfg)
	}
}

func handleManifestResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		m, err := manifest.New().Load(projectPath)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, m)
	}
}

func handleTemplatesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		ids, err := render.Builtin()
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, ids)
	}
}

func handleEntityResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract entity name from the arguments (populated by template matching)
		name, ok := request.Params.Arguments["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("entity name is required")
		}

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		m, err := manifest.New().Load(projectPath)
		if err != nil {
			return nil, err
		}

		formats, err := naming.Format(name)
		if err != nil {
			return nil, fmt.Errorf("formatting %q: %w", name, err)
		}
		layers, ok := m.Entities[formats.KebabCase]
		if !ok {
			return nil, fmt.Errorf("entity %q has not been generated", formats.KebabCase)
		}

		return jsonContents(request.Params.URI, entityResource{
			Formats:     formats,
			Layers:      layers,
			Directories: domain.PlanDirectories(projectPath, cfg.EffectiveSourceRoot(), formats.KebabCase),
		})
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
