// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the relationship vocabulary and the explicit
// relationship to namespace table. An unknown tag has no namespace.
package model

// Relationship is the tag carried by every edge.
type Relationship string

const (
	RelBiologicalProcess Relationship = "BiologicalProcess-Protein-FunctionalAnnotation"
	RelMolecularFunction Relationship = "MolecularFunction-Protein-FunctionalAnnotation"
	RelCellularComponent Relationship = "CellularComponent-Protein-FunctionalAnnotation"

	RelProteinInteraction Relationship = "Protein-Protein-ProteinProteinInteraction"
)

// Namespace is a GO namespace label as exposed on annotation records.
type Namespace string

const (
	NamespaceBiologicalProcess Namespace = "BiologicalProcess"
	NamespaceMolecularFunction Namespace = "MolecularFunction"
	NamespaceCellularComponent Namespace = "CellularComponent"
)

// annotationNamespaces maps each functional annotation tag to its namespace.
var annotationNamespaces = map[Relationship]Namespace{
	RelBiologicalProcess: NamespaceBiologicalProcess,
	RelMolecularFunction: NamespaceMolecularFunction,
	RelCellularComponent: NamespaceCellularComponent,
}

// AnnotationRelationships lists the functional annotation tags in a stable order.
func AnnotationRelationships() []Relationship {
	return []Relationship{RelBiologicalProcess, RelMolecularFunction, RelCellularComponent}
}

// IsAnnotation reports whether r is one of the functional annotation subtypes.
func (r Relationship) IsAnnotation() bool {
	_, ok := annotationNamespaces[r]
	return ok
}

// IsInteraction reports whether r is the protein-protein interaction type.
func (r Relationship) IsInteraction() bool {
	return r == RelProteinInteraction
}

// Namespace returns the GO namespace of an annotation tag. The boolean is
// false for every tag that is not a functional annotation.
func (r Relationship) Namespace() (Namespace, bool) {
	ns, ok := annotationNamespaces[r]
	return ns, ok
}
