// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of the rows that make up the
// protein annotation graph, together with the fixed relationship vocabulary
// that gives edges their meaning.
//
// # Core Concepts
//
//   - ProteinNode: one row per distinct protein, keyed by its canonical id
//     (`Protein::<local>`). Carries an optional display name and any extra
//     scalar columns the upstream exporter produced.
//
//   - GoTermNode: a Gene Ontology term. Its `ID` is the internal key used by
//     edges, its `ExternalID` is the public accession (`GO:0008150`). The two
//     live in different namespaces and are never compared with each other.
//
//   - Edge: an untyped link between two node ids, tagged with a Relationship.
//     Only functional annotations and protein-protein interactions have a
//     meaning here; every other tag is carried but ignored.
//
//   - IdentifierRecord: maps an external handle (uuid, name, secondary and
//     ambiguous ids) onto the canonical protein id it designates.
//
// Scores are pointers. A nil score means the column was absent for that row,
// and it is propagated as null all the way to the caller.
package model
