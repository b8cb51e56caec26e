// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Edge is a single row of the edge table. Source and Target reference either a
// protein id or a GO term internal id; the table does not say which.
type Edge struct {
	Source       string
	Target       string
	Relationship Relationship

	// MLPredictionScore is set on functional annotation edges.
	MLPredictionScore *float64
	// StringCombinedScore is set on protein-protein interaction edges.
	StringCombinedScore *float64
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
