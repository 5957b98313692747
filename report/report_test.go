package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-payback/payback/report"
	"github.com/go-payback/payback/solution"
)

func TestSprint(t *testing.T) {
	sol := solution.New([]solution.Edge{
		{From: "A", To: "D", Weight: 2},
		{From: "B", To: "C", Weight: 1},
	})
	assert.Equal(t, "\"A\" to \"D\": 2.0\n\"B\" to \"C\": 1.0\n", report.Sprint(sol))
}

func TestSprint_Empty(t *testing.T) {
	assert.Equal(t, "", report.Sprint(solution.New(nil)))
}

func TestDOT(t *testing.T) {
	sol := solution.New([]solution.Edge{{From: "A", To: "D", Weight: 2}})
	assert.Equal(t, `digraph { "A" -> "D" [label="2"]; }`, report.DOT(sol))
}

func TestDOT_Empty(t *testing.T) {
	assert.Equal(t, "digraph { }", report.DOT(solution.New(nil)))
}
