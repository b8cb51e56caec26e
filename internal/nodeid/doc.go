// internal/nodeid/doc.go

/*
Package nodeid handles graph node identifiers of the canonical form
`Kind::local`.

Protein nodes are keyed as `Protein::<local>`, other node kinds use their
own prefix. The kind is the only structural information an identifier
carries, and it is what the index builder uses to decide whether an edge
endpoint is protein-scoped.
*/
package nodeid
