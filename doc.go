// Package payback is your toolkit for minimizing the number of monetary
// transactions needed to settle debts within a group.
//
// 🚀 What is payback?
//
//	A small, dependency-light library that brings together:
//
//	  • Normalization — build a balance.Model from edges, balances, or maps
//	  • Two 2-approximation solvers — Star Expand and Greedy Satisfaction
//	  • An exact solver — partitions participants into zero-sum blocks and
//	    recombines per-block approximations into a provable optimum
//	  • Reporting — pretty-printed transactions and Graphviz DOT
//
// ✨ Why choose payback?
//
//   - Deterministic    — every tie-break (center choice, greedy extremes,
//     partition selection) resolves by first-seen order
//   - Polynomial by default — ApproxStarExpand/ApproxGreedySatisfaction run
//     in O(n) / O(n²); reach for PartitioningStarExpand or
//     PartitioningGreedySatisfaction only when you need the true optimum
//   - Pure Go    — the solver core has no dependency beyond the standard
//     library
//
// Everything is organized under one subpackage per concern:
//
//	balance/      — the normalized problem instance (balance.Model)
//	solution/     — Edge, Solution, and Validate
//	starexpand/   — the Star Expand 2-approximation
//	greedy/       — the Greedy Satisfaction 2-approximation
//	partition/    — the set-partition enumerator
//	exact/        — the exact partition solver
//	normalize/    — adapters from edges/balances/maps to a balance.Model
//	report/       — transaction text and DOT rendering
//
// Quick example:
//
//	b, _ := normalize.FromBalances([]balance.Entry{
//	    {ID: "A", Balance: -2}, {ID: "B", Balance: -1},
//	    {ID: "C", Balance: 1}, {ID: "D", Balance: 2},
//	})
//	sol, _ := payback.Solve(b, payback.ApproxGreedySatisfaction)
//	text, _ := payback.PrintSolution(b, sol)
//	fmt.Print(text)
//
//	go get github.com/go-payback/payback
package payback
