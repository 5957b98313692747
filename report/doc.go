// Package report renders a solution.Solution as human-readable text or as
// Graphviz DOT (spec §4.6, §6). Neither function validates the Solution
// against a balance.Model — callers that need that guarantee should run
// solution.Validate first (the root payback package's PrintSolution and
// SolutionToDOT do exactly that).
package report
