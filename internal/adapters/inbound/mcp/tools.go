package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"github.com/makeca/make-ca/internal/adapters/outbound/config"
	"github.com/makeca/make-ca/internal/adapters/outbound/gitinfo"
	"github.com/makeca/make-ca/internal/adapters/outbound/logging"
	"github.com/makeca/make-ca/internal/adapters/outbound/manifest"
	"github.com/makeca/make-ca/internal/adapters/outbound/projectfs"
	"github.com/makeca/make-ca/internal/adapters/outbound/render"
	"github.com/makeca/make-ca/internal/application"
	"github.com/makeca/make-ca/internal/domain"
	"github.com/makeca/make-ca/internal/domain/naming"
)

// registerTools registers all make-ca MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath, version string) {
	// 1. make_ca_format_name
	s.AddTool(
		mcplib.NewTool("make_ca_format_name",
			mcplib.WithDescription("Returns the kebab, camel and pascal forms of an entity name and their plurals"),
			mcplib.WithString("name",
				mcplib.Required(),
				mcplib.Description("Entity name in any casing, e.g. user-profile or UserProfile"),
			),
		),
		handleFormatName(),
	)

	// 2. make_ca_init
	s.AddTool(
		mcplib.NewTool("make_ca_init",
			mcplib.WithDescription("Lay out the clean architecture skeleton and write .make-ca.yaml"),
			mcplib.WithString("path", mcplib.Description("Project directory, relative to the server's project root (default: the root itself)")),
			mcplib.WithBoolean("git", mcplib.Description("Initialize a git repository when the directory is not already inside one")),
		),
		handleInit(projectPath, version),
	)

	// 3. make_ca_generate
	s.AddTool(
		mcplib.NewTool("make_ca_generate",
			mcplib.WithDescription("Generate domain, service, infrastructure and application files for an entity. Returns the generation report as JSON."),
			mcplib.WithString("entity", mcplib.Required(), mcplib.Description("Entity name in kebab-case, e.g. user-profile")),
			mcplib.WithString("only", mcplib.Description("Generate only this layer: domain, infrastructure or application")),
			mcplib.WithString("skip", mcplib.Description("Comma-separated layers to skip: domain, infrastructure, application")),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report the planned files without writing them")),
		),
		handleGenerate(projectPath, version),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices(version string) (*application.InitService, *application.GenerateService) {
	log := logging.Discard()
	fs := projectfs.NewOS(log)
	cfg := config.New()
	renderers := render.Factory(afero.NewOsFs(), log)
	return application.NewInitService(fs, cfg, renderers, gitinfo.New(), log, version),
		application.NewGenerateService(cfg, fs, renderers, manifest.New(), log, version)
}

func handleFormatName() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		formats, err := naming.Format(name)
		if err != nil {
			return errorResult(fmt.Sprintf("formatting %q: %v", name, err)), nil
		}
		return jsonResult(formats)
	}
}

func handleInit(projectPath, version string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		path := projectPath
		if p, ok := args["path"].(string); ok && p != "" {
			path = resolve(projectPath, p)
		}
		git, _ := args["git"].(bool)

		initSvc, _ := newServices(version)
		report, err := initSvc.Init(application.InitRequest{Path: path, Git: git})
		if err != nil && !domain.IsKind(err, domain.KindAlreadyInitialized) {
			return errorResult(fmt.Sprintf("init failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleGenerate(projectPath, version string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entity, err := request.RequireString("entity")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		only, _ := args["only"].(string)
		skipStr, _ := args["skip"].(string)
		dryRun, _ := args["dry_run"].(bool)

		opts, err := domain.OptionsFromLayers(only, splitAndTrim(skipStr))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, genSvc := newServices(version)
		report, err := genSvc.Generate(application.GenerateRequest{
			ProjectPath: projectPath,
			Entity:      entity,
			Options:     opts,
			DryRun:      dryRun,
		})
		if err != nil {
			return errorResult(generateFailure(err, report)), nil
		}
		return jsonResult(report)
	}
}

// generateFailure describes a failed run, including the partial report when
// generation had started.
func generateFailure(err error, report *domain.GenerateReport) string {
	msg := fmt.Sprintf("generate failed: %v", err)
	if ue, ok := domain.AsUserError(err); ok && ue.Hint != "" {
		msg += fmt.Sprintf(" (try: %s)", ue.Hint)
	}
	if report == nil {
		return msg
	}
	data, jerr := json.MarshalIndent(report, "", "  ")
	if jerr != nil {
		return msg
	}
	return msg + "\n" + string(data)
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
