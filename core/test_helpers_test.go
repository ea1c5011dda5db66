// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for opgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/opgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// NewTriangle RETURNS A→B(1), B→C(2), C→A(3) with vertex weights 1,2,3.
func NewTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	MustErrorNil(t, g.AddVertex(VertexA, Weight1), "AddVertex(A)")
	MustErrorNil(t, g.AddVertex(VertexB, Weight2), "AddVertex(B)")
	MustErrorNil(t, g.AddVertex(VertexC, Weight3), "AddVertex(C)")
	MustErrorNil(t, g.AddEdge(VertexA, VertexB, Weight1), "AddEdge(A,B)")
	MustErrorNil(t, g.AddEdge(VertexB, VertexC, Weight2), "AddEdge(B,C)")
	MustErrorNil(t, g.AddEdge(VertexC, VertexA, Weight3), "AddEdge(C,A)")

	return g
}

// MustErrorNil FAILS the test immediately if err != nil.
func MustErrorNil(t *testing.T, err error, ctx string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", ctx, err)
	}
}

// MustErrorIs FAILS the test immediately unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, ctx string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: got error %v; want %v", ctx, err, target)
	}
}

// MustEqualInt64 FAILS the test immediately if got != want.
func MustEqualInt64(t *testing.T, got, want int64, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d; want %d", ctx, got, want)
	}
}

// MustEqualInt FAILS the test immediately if got != want.
func MustEqualInt(t *testing.T, got, want int, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d; want %d", ctx, got, want)
	}
}

// MustEqualBool FAILS the test immediately if got != want.
func MustEqualBool(t *testing.T, got, want bool, ctx string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %v; want %v", ctx, got, want)
	}
}
