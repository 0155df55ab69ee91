package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// TemplatePair maps one template to the file it produces. Dest is relative
// to the directory selected by Dir and may reference EntityNameFormats
// fields, e.g. "entity/{{.PascalCase}}.ts".
type TemplatePair struct {
	Template string `json:"template"`
	Dir      DirKey `json:"dir"`
	Dest     string `json:"dest"`
}

// Destination resolves the absolute output path of p for entity e.
func (p TemplatePair) Destination(dirs DirectorySet, e EntityNameFormats) (string, error) {
	base := dirs.Path(p.Dir)
	if base == "" {
		return "", fmt.Errorf("template %s: unknown directory %q", p.Template, p.Dir)
	}

	tmpl, err := template.New(p.Template).Option("missingkey=error").Parse(p.Dest)
	if err != nil {
		return "", fmt.Errorf("template %s: parsing destination: %w", p.Template, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, e); err != nil {
		return "", fmt.Errorf("template %s: resolving destination: %w", p.Template, err)
	}
	return filepath.Join(base, filepath.FromSlash(b.String())), nil
}

// LayerTemplates is the ordered template table of every layer.
var LayerTemplates = map[Layer][]TemplatePair{
	LayerDomain: {
		{"domain/di/index.ts", DirDomain, "di/index.ts"},
		{"domain/entity/Entity.ts", DirDomain, "entity/{{.PascalCase}}.ts"},
		{"domain/entity/index.ts", DirDomain, "entity/index.ts"},
		{"domain/exception/NotFoundException.ts", DirDomain, "exception/{{.PascalCase}}NotFoundException.ts"},
		{"domain/exception/AlreadyExistsException.ts", DirDomain, "exception/{{.PascalCase}}AlreadyExistsException.ts"},
		{"domain/exception/index.ts", DirDomain, "exception/index.ts"},
		{"domain/repository/Repository.ts", DirDomain, "repository/{{.PascalCase}}Repository.ts"},
		{"domain/repository/RepositoryPort.ts", DirDomain, "repository/{{.PascalCase}}RepositoryPort.ts"},
		{"domain/repository/RepositoryResult.ts", DirDomain, "repository/{{.PascalCase}}RepositoryResult.ts"},
		{"domain/repository/index.ts", DirDomain, "repository/index.ts"},
		{"domain/use-case/UseCasePort.ts", DirDomain, "use-case/{{.PascalCase}}UseCasePort.ts"},
		{"domain/use-case/UseCaseResult.ts", DirDomain, "use-case/{{.PascalCase}}UseCaseResult.ts"},
		{"domain/use-case/GetUseCase.ts", DirDomain, "use-case/Get{{.PascalCase}}UseCase.ts"},
		{"domain/use-case/GetManyUseCase.ts", DirDomain, "use-case/Get{{.PluralPascalCase}}UseCase.ts"},
		{"domain/use-case/CreateUseCase.ts", DirDomain, "use-case/Create{{.PascalCase}}UseCase.ts"},
		{"domain/use-case/UpdateUseCase.ts", DirDomain, "use-case/Update{{.PascalCase}}UseCase.ts"},
		{"domain/use-case/DeleteUseCase.ts", DirDomain, "use-case/Delete{{.PascalCase}}UseCase.ts"},
		{"domain/use-case/index.ts", DirDomain, "use-case/index.ts"},
	},
	LayerService: {
		{"service/GetService.ts", DirService, "Get{{.PascalCase}}Service.ts"},
		{"service/GetManyService.ts", DirService, "Get{{.PluralPascalCase}}Service.ts"},
		{"service/CreateService.ts", DirService, "Create{{.PascalCase}}Service.ts"},
		{"service/UpdateService.ts", DirService, "Update{{.PascalCase}}Service.ts"},
		{"service/DeleteService.ts", DirService, "Delete{{.PascalCase}}Service.ts"},
		{"service/index.ts", DirService, "index.ts"},
	},
	LayerInfrastructure: {
		{"infrastructure/persistence/typeorm/feature/TypeOrmEntity.ts", DirInfra, "TypeOrm{{.PascalCase}}.entity.ts"},
		{"infrastructure/persistence/typeorm/feature/TypeOrmMapper.ts", DirInfra, "TypeOrm{{.PascalCase}}Mapper.ts"},
		{"infrastructure/persistence/typeorm/feature/TypeOrmRepository.ts", DirInfra, "TypeOrm{{.PascalCase}}Repository.ts"},
		{"infrastructure/persistence/typeorm/feature/index.ts", DirInfra, "index.ts"},
	},
	LayerApplication: {
		{"application/controller/Controller.ts", DirApp, "controller/{{.PascalCase}}Controller.ts"},
		{"application/documentation/body/RestApiCreateBody.ts", DirApp, "documentation/body/RestApiCreate{{.PascalCase}}Body.ts"},
		{"application/documentation/body/RestApiUpdateBody.ts", DirApp, "documentation/body/RestApiUpdate{{.PascalCase}}Body.ts"},
		{"application/documentation/body/index.ts", DirApp, "documentation/body/index.ts"},
		{"application/documentation/query/RestApiGetQuery.ts", DirApp, "documentation/query/RestApiGet{{.PluralPascalCase}}Query.ts"},
		{"application/documentation/query/index.ts", DirApp, "documentation/query/index.ts"},
		{"application/documentation/index.ts", DirApp, "documentation/index.ts"},
		{"application/di/feature/EntityModule.ts", DirDIFeature, "{{.PascalCase}}Module.ts"},
	},
}

// ProjectTemplate maps an init template to a project-relative path.
// Paths may reference ProjectData fields.
type ProjectTemplate struct {
	Template string
	Dest     string
}

// InitTemplates are rendered once by init.
var InitTemplates = []ProjectTemplate{
	{"init/package.json", "package.json"},
	{"init/tsconfig.json", "tsconfig.json"},
	{"init/README.md", "README.md"},
	{"init/core/common/Exception.ts", "{{.SourceRoot}}/core/common/exception/Exception.ts"},
	{"init/core/common/Code.ts", "{{.SourceRoot}}/core/common/code/Code.ts"},
	{"init/core/common/UseCase.ts", "{{.SourceRoot}}/core/common/use-case/UseCase.ts"},
	{"init/core/common/RepositoryOptions.ts", "{{.SourceRoot}}/core/common/persistence/RepositoryOptions.ts"},
}

// Destination resolves the absolute output path of t for project data d.
func (t ProjectTemplate) Destination(root string, d ProjectData) (string, error) {
	tmpl, err := template.New(t.Template).Option("missingkey=error").Parse(t.Dest)
	if err != nil {
		return "", fmt.Errorf("template %s: parsing destination: %w", t.Template, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("template %s: resolving destination: %w", t.Template, err)
	}
	return filepath.Join(root, filepath.FromSlash(b.String())), nil
}
