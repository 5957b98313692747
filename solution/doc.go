// Package solution defines Edge and Solution, the output of every payback
// solver, plus Validate, the single predicate that decides whether a
// Solution settles a balance.Model (spec §3, §4.6).
//
// A Solution is produced fresh per solve call and never mutated after
// return; it carries no reference back to the Model it was solved for, so
// Validate always takes both explicitly.
package solution
