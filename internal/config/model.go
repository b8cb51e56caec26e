package config

import (
	"fmt"
	"path/filepath"

	"github.com/vk/protgraph/internal/graphstore"
	"github.com/vk/protgraph/internal/nodeid"
)

// DefaultProteinPrefix is the node id prefix of protein nodes.
const DefaultProteinPrefix = nodeid.KindProtein + nodeid.Separator

// DefaultDataDir is the data directory used when none is configured.
const DefaultDataDir = "data"

// DefaultTableExt is the file extension assumed for tables whose path is not
// configured.
const DefaultTableExt = ".jsonl"

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Dataset *Dataset
	Server  *Server
}

// Dataset locates the four tables of one protein graph.
type Dataset struct {
	Name    string
	DataDir string

	ProteinNodes      string
	GoTermNodes       string
	Edges             string
	IdentifierRecords string

	// ProteinPrefix is the node id prefix that marks protein-scoped ids,
	// for example "Protein::".
	ProteinPrefix string
}

// Server configures the optional health and metrics endpoint.
type Server struct {
	// HealthcheckPort is the listen port. Zero disables the server.
	HealthcheckPort int
}

// NewDataset returns a dataset rooted at dataDir with every table at its
// default location.
func NewDataset(name, dataDir string) *Dataset {
	d := &Dataset{Name: name, DataDir: dataDir, ProteinPrefix: DefaultProteinPrefix}
	d.ApplyDefaults()
	return d
}

// DefaultTablePath returns <dataDir>/<table>.jsonl.
func DefaultTablePath(dataDir, table string) string {
	return filepath.Join(dataDir, table+DefaultTableExt)
}

// ApplyDefaults fills every empty table path with its default location under
// DataDir, and an empty prefix with DefaultProteinPrefix.
func (d *Dataset) ApplyDefaults() {
	for _, t := range d.tables() {
		if *t.path == "" {
			*t.path = DefaultTablePath(d.DataDir, t.name)
		}
	}
	if d.ProteinPrefix == "" {
		d.ProteinPrefix = DefaultProteinPrefix
	}
}

// Validate reports the first problem with the dataset, if any.
func (d *Dataset) Validate() error {
	for _, t := range d.tables() {
		if *t.path == "" {
			return fmt.Errorf("dataset %q: path of table %q is empty", d.Name, t.name)
		}
	}
	if _, err := d.ProteinKind(); err != nil {
		return fmt.Errorf("dataset %q: %w", d.Name, err)
	}
	return nil
}

// ProteinKind returns the node kind encoded by ProteinPrefix, e.g. "Protein"
// for "Protein::".
func (d *Dataset) ProteinKind() (string, error) {
	kind, err := nodeid.ParsePrefix(d.ProteinPrefix)
	if err != nil {
		return "", fmt.Errorf("protein_prefix: %w", err)
	}
	return kind, nil
}

type tablePath struct {
	name string
	path *string
}

func (d *Dataset) tables() []tablePath {
	return []tablePath{
		{graphstore.TableProteinNodes, &d.ProteinNodes},
		{graphstore.TableGoTermNodes, &d.GoTermNodes},
		{graphstore.TableEdges, &d.Edges},
		{graphstore.TableIdentifierRecords, &d.IdentifierRecords},
	}
}
