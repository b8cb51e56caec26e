package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/protgraph/internal/config"
	"github.com/vk/protgraph/internal/ctxlog"
	"github.com/vk/protgraph/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// defaultDatasetName names the dataset synthesized when no file declares one.
const defaultDatasetName = "default"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	dataDir   string
	lookupEnv func(string) (string, bool)
}

var _ config.Loader = (*Loader)(nil)

// Option configures a Loader.
type Option func(*Loader)

// WithDataDir overrides the data_dir of the dataset, including its value as
// seen by the other attributes.
func WithDataDir(dir string) Option {
	return func(l *Loader) {
		l.dataDir = dir
	}
}

// WithLookupEnv replaces the environment lookup used by env().
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *Loader) {
		l.lookupEnv = fn
	}
}

// NewLoader creates a new HCL configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{lookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load parses every .hcl file found under paths and translates the result.
// Paths that do not exist are skipped. When no file declares a dataset, a
// default one rooted at data_dir is returned.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	var datasets []*datasetBlock
	var servers []*serverBlock

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		datasets = append(datasets, root.Datasets...)
		servers = append(servers, root.Servers...)
	}

	if len(datasets) > 1 {
		return nil, fmt.Errorf("expected one dataset block, found %d (%q and %q)", len(datasets), datasets[0].Name, datasets[1].Name)
	}
	if len(servers) > 1 {
		return nil, fmt.Errorf("expected at most one server block, found %d", len(servers))
	}

	model := &config.Model{Server: &config.Server{}}

	if len(datasets) == 0 {
		dir := l.dataDir
		if dir == "" {
			dir = config.DefaultDataDir
		}
		logger.Debug("No dataset block found, using defaults.", "data_dir", dir)
		model.Dataset = config.NewDataset(defaultDatasetName, dir)
	} else {
		if model.Dataset, err = l.translateDataset(datasets[0]); err != nil {
			return nil, err
		}
	}

	if len(servers) == 1 {
		if model.Server, err = l.translateServer(servers[0]); err != nil {
			return nil, err
		}
	}

	if err := model.Dataset.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"dataset", model.Dataset.Name,
		"data_dir", model.Dataset.DataDir,
		"healthcheck_port", model.Server.HealthcheckPort,
	)
	return model, nil
}

// translateDataset evaluates data_dir first and then the table paths, which
// may refer to it as a variable.
func (l *Loader) translateDataset(b *datasetBlock) (*config.Dataset, error) {
	d := &config.Dataset{Name: b.Name}

	d.DataDir = l.dataDir
	if d.DataDir == "" {
		if err := checkNoSelfReference(b.DataDir, dataDirVar); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", b.Name, err)
		}
		dir, ok, err := evalString(b.DataDir, l.evalContext(map[string]cty.Value{}), "data_dir")
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", b.Name, err)
		}
		if !ok {
			dir = config.DefaultDataDir
		}
		d.DataDir = dir
	}

	evalCtx := l.evalContext(map[string]cty.Value{
		dataDirVar: cty.StringVal(d.DataDir),
	})
	attrs := []datasetAttr{
		{"protein_nodes", b.ProteinNodes, &d.ProteinNodes},
		{"go_term_nodes", b.GoTermNodes, &d.GoTermNodes},
		{"edges", b.Edges, &d.Edges},
		{"identifier_records", b.IdentifierRecords, &d.IdentifierRecords},
		{"protein_prefix", b.ProteinPrefix, &d.ProteinPrefix},
	}
	for _, a := range attrs {
		v, ok, err := evalString(a.expr, evalCtx, a.name)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", b.Name, err)
		}
		if ok {
			*a.dst = v
		}
	}

	d.ApplyDefaults()
	return d, nil
}

// datasetAttr binds a string attribute of the dataset block to its field.
type datasetAttr struct {
	name string
	expr hcl.Expression
	dst  *string
}

func (l *Loader) translateServer(b *serverBlock) (*config.Server, error) {
	port, _, err := evalInt(b.HealthcheckPort, l.evalContext(nil), "healthcheck_port")
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("server: healthcheck_port %d is out of range", port)
	}
	return &config.Server{HealthcheckPort: port}, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found, in a stable order and without duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", path, err)
		}
		for _, p := range found {
			add(p)
		}
	}
	return allFiles, nil
}
