package domain

// LayerResult is the outcome of generating one layer.
type LayerResult struct {
	Layer   Layer    `json:"layer"`
	Skipped bool     `json:"skipped,omitempty"`
	Files   []string `json:"files,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Failed reports whether the layer was attempted and did not finish.
func (r LayerResult) Failed() bool { return r.Error != "" }

// GenerateReport describes one generate run. Files are relative to
// ProjectPath.
type GenerateReport struct {
	ProjectPath string            `json:"project_path"`
	Entity      EntityNameFormats `json:"entity"`
	DryRun      bool              `json:"dry_run,omitempty"`
	Layers      []LayerResult     `json:"layers"`
}

// Failed reports whether any layer failed.
func (r GenerateReport) Failed() bool {
	for _, l := range r.Layers {
		if l.Failed() {
			return true
		}
	}
	return false
}

// FileCount returns the number of files written (or planned, for dry runs).
func (r GenerateReport) FileCount() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Files)
	}
	return n
}

// GeneratedLayers returns the layers that completed.
func (r GenerateReport) GeneratedLayers() []Layer {
	var out []Layer
	for _, l := range r.Layers {
		if !l.Skipped && !l.Failed() {
			out = append(out, l.Layer)
		}
	}
	return out
}

// InitReport describes one init run.
type InitReport struct {
	ProjectPath        string   `json:"project_path"`
	NonEmpty           bool     `json:"non_empty,omitempty"`
	AlreadyInitialized bool     `json:"already_initialized,omitempty"`
	Directories        []string `json:"directories,omitempty"`
	Files              []string `json:"files,omitempty"`
	GitInitialized     bool     `json:"git_initialized,omitempty"`
}
