package scaffold

import (
	"context"
	"path/filepath"

	"github.com/schmitthub/vitewind/internal/fileops"
	"github.com/schmitthub/vitewind/internal/runner"
	"github.com/schmitthub/vitewind/internal/templates"
)

// Step names, in pipeline order.
const (
	StepCreateVite          = "create-vite"
	StepInstallTailwind     = "install-tailwind"
	StepInitTailwind        = "init-tailwind"
	StepPatchIndexCSS       = "patch-index-css"
	StepAppendAppCSS        = "append-app-css"
	StepWriteAppJSX         = "write-app-jsx"
	StepWriteTailwindConfig = "write-tailwind-config"
	StepCopyIcon            = "copy-icon"
	StepGitInit             = "git-init"
)

// TailwindDirectives is prepended to the project's src/index.css.
const TailwindDirectives = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n\n"

// Project-relative paths the pipeline touches.
var (
	IndexCSSPath       = filepath.Join("src", "index.css")
	AppCSSPath         = filepath.Join("src", "App.css")
	AppJSXPath         = filepath.Join("src", "App.jsx")
	TailwindConfigPath = "tailwind.config.js"
	IconPath           = filepath.Join("src", "assets", templates.IconFileName)
)

// Step is one unit of the pipeline.
type Step struct {
	Name string
	// Title is a short human-readable description.
	Title string
	run   func(ctx context.Context, p *Pipeline, rc *RunContext) error
}

// Steps returns the ordered steps for rc. The git step is included only
// when rc.InitGit is set.
func Steps(rc *RunContext) []Step {
	steps := []Step{
		{Name: StepCreateVite, Title: "Creating Vite project", run: createVite},
		{Name: StepInstallTailwind, Title: "Installing Tailwind CSS", run: installTailwind},
		{Name: StepInitTailwind, Title: "Generating Tailwind config", run: initTailwind},
		{Name: StepPatchIndexCSS, Title: "Adding Tailwind directives", run: patchIndexCSS},
		{Name: StepAppendAppCSS, Title: "Extending App.css", run: appendAppCSS},
		{Name: StepWriteAppJSX, Title: "Writing App.jsx", run: writeAppJSX},
		{Name: StepWriteTailwindConfig, Title: "Writing tailwind.config.js", run: writeTailwindConfig},
		{Name: StepCopyIcon, Title: "Copying Tailwind icon", run: copyIcon},
	}
	if rc != nil && rc.InitGit {
		steps = append(steps, Step{Name: StepGitInit, Title: "Initializing git repository", run: gitInit})
	}
	return steps
}

func createVite(ctx context.Context, p *Pipeline, rc *RunContext) error {
	return p.Runner.Run(ctx, runner.Command{
		Dir:    rc.WorkDir,
		Name:   rc.Settings.PackageManager,
		Args:   []string{"create", "vite@latest", rc.Name, "--", "--template", rc.Settings.Template},
		Output: rc.Output,
	})
}

func installTailwind(ctx context.Context, p *Pipeline, rc *RunContext) error {
	args := append([]string{"install", "-D"}, rc.Settings.DevDependencies...)
	return p.Runner.Run(ctx, runner.Command{
		Dir:    rc.ProjectDir,
		Name:   rc.Settings.PackageManager,
		Args:   args,
		Output: rc.Output,
	})
}

func initTailwind(ctx context.Context, p *Pipeline, rc *RunContext) error {
	return p.Runner.Run(ctx, runner.Command{
		Dir:    rc.ProjectDir,
		Name:   rc.Settings.Runner,
		Args:   []string{"tailwindcss", "init", "-p"},
		Output: rc.Output,
	})
}

func patchIndexCSS(_ context.Context, p *Pipeline, rc *RunContext) error {
	path := rc.Path(IndexCSSPath)
	if err := fileops.PrependFile(p.Fs, path, TailwindDirectives); err != nil {
		return &FileError{Op: "prepend", Path: path, Err: err}
	}
	return nil
}

func appendAppCSS(_ context.Context, p *Pipeline, rc *RunContext) error {
	path := rc.Path(AppCSSPath)
	if err := fileops.AppendFile(p.Fs, path, "\n"+rc.Bundle.AppCSS); err != nil {
		return &FileError{Op: "append", Path: path, Err: err}
	}
	return nil
}

func writeAppJSX(_ context.Context, p *Pipeline, rc *RunContext) error {
	return overwriteTrimmed(p, rc.Path(AppJSXPath), rc.Bundle.AppJSX)
}

func writeTailwindConfig(_ context.Context, p *Pipeline, rc *RunContext) error {
	return overwriteTrimmed(p, rc.Path(TailwindConfigPath), rc.Bundle.TailwindConfig)
}

func copyIcon(_ context.Context, p *Pipeline, rc *RunContext) error {
	path := rc.Path(IconPath)
	if err := fileops.CopyFile(rc.Bundle.FS(), templates.IconFileName, p.Fs, path); err != nil {
		return &FileError{Op: "copy", Path: path, Err: err}
	}
	return nil
}

func gitInit(ctx context.Context, p *Pipeline, rc *RunContext) error {
	if p.Git == nil {
		return errNoGit
	}
	return p.Git.Init(ctx, rc.ProjectDir)
}
