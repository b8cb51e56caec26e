// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

import "github.com/zclconf/go-cty/cty"

// ProteinNode is a single row of the protein node table.
type ProteinNode struct {
	ID   string
	Name *string

	// Attributes holds every other column of the row, keyed by column name.
	// Missing cells are null values.
	Attributes map[string]cty.Value
}

// HasName reports whether the row carries a non-empty display name.
func (p ProteinNode) HasName() bool {
	return p.Name != nil && *p.Name != ""
}

// GoTermNode is a single row of the GO term node table.
type GoTermNode struct {
	ID         string
	ExternalID string
	Name       string
	Namespace  string
}

// IdentifierRecord is a single row of the protein identifier table.
type IdentifierRecord struct {
	UUID       string
	ExternalID string
	Name       *string

	SecondaryIDs          []string
	AmbiguousSecondaryIDs []string
}

// HasName reports whether the record carries a non-empty name.
func (r IdentifierRecord) HasName() bool {
	return r.Name != nil && *r.Name != ""
}

// StringPtr returns a pointer to s. It is a convenience for building rows in
// loaders and tests.
func StringPtr(s string) *string {
	return &s
}
