package balance

// Entry is one (identifier, balance) pair in a Model. Balance is a signed
// integer: negative means the participant is a net debtor, positive means a
// net creditor.
type Entry struct {
	ID      string
	Balance int64
}

// Model is the normalized problem instance described in spec §3: a finite
// ordered sequence of Entries whose identifiers are pairwise distinct, whose
// balances are never zero, and whose balances sum to exactly zero.
//
// Order is implementation-defined (first-seen order from whatever input
// produced it) but stable for the lifetime of the Model. Model is immutable
// after New returns and may be shared freely across goroutines.
type Model struct {
	entries []Entry
	index   map[string]int // ID -> position in entries
}

// New validates entries against the Model invariants (§3) and returns an
// immutable Model. entries is copied; the caller's slice may be reused or
// mutated afterward without affecting the Model.
//
// Complexity: O(n).
func New(entries []Entry) (*Model, error) {
	m := &Model{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	var sum int64
	for i, e := range entries {
		if e.ID == "" {
			return nil, ErrEmptyIdentifier
		}
		if e.Balance == 0 {
			return nil, ErrZeroBalance
		}
		if _, dup := m.index[e.ID]; dup {
			return nil, ErrDuplicateIdentifier
		}

		m.entries[i] = e
		m.index[e.ID] = i
		sum += e.Balance
	}
	if sum != 0 {
		return nil, ErrUnbalancedNetwork
	}

	return m, nil
}

// Len returns the number of participants in the Model.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Entry returns the (identifier, balance) pair at position i.
func (m *Model) Entry(i int) Entry {
	return m.entries[i]
}

// ID returns the identifier at position i.
func (m *Model) ID(i int) string {
	return m.entries[i].ID
}

// BalanceAt returns the balance at position i.
func (m *Model) BalanceAt(i int) int64 {
	return m.entries[i].Balance
}

// IndexOf returns the position of identifier id and true, or (0, false) if
// the Model has no such participant.
func (m *Model) IndexOf(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// BalanceOf returns the balance of identifier id and true, or (0, false) if
// the Model has no such participant.
func (m *Model) BalanceOf(id string) (int64, bool) {
	i, ok := m.index[id]
	if !ok {
		return 0, false
	}

	return m.entries[i].Balance, true
}

// Entries returns a copy of the Model's (identifier, balance) pairs in
// Model order.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Balances returns a copy of the Model's balances in Model order, suitable
// for feeding to partition.ZeroSum.
func (m *Model) Balances() []int64 {
	out := make([]int64, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Balance
	}

	return out
}

// IndexOfMaxAbs returns the position of the participant with the largest
// absolute balance, breaking ties by first position in Model order (spec
// §4.2 center-selection rule). Returns -1 if the Model is empty.
func (m *Model) IndexOfMaxAbs() int {
	best := -1
	var bestAbs int64
	for i, e := range m.entries {
		abs := e.Balance
		if abs < 0 {
			abs = -abs
		}
		if best == -1 || abs > bestAbs {
			best = i
			bestAbs = abs
		}
	}

	return best
}
