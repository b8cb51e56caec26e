package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all top-level blocks from any file. Unknown
// blocks and attributes are rejected by the decoder.
type fileRoot struct {
	Datasets []*datasetBlock `hcl:"dataset,block"`
	Servers  []*serverBlock  `hcl:"server,block"`
}

// datasetBlock is the HCL schema of a `dataset "<name>" { ... }` block.
// Attributes stay unevaluated until data_dir is known.
type datasetBlock struct {
	Name              string         `hcl:"name,label"`
	DataDir           hcl.Expression `hcl:"data_dir,optional"`
	ProteinNodes      hcl.Expression `hcl:"protein_nodes,optional"`
	GoTermNodes       hcl.Expression `hcl:"go_term_nodes,optional"`
	Edges             hcl.Expression `hcl:"edges,optional"`
	IdentifierRecords hcl.Expression `hcl:"identifier_records,optional"`
	ProteinPrefix     hcl.Expression `hcl:"protein_prefix,optional"`
}

// serverBlock is the HCL schema of the `server { ... }` block.
type serverBlock struct {
	HealthcheckPort hcl.Expression `hcl:"healthcheck_port,optional"`
}
