package domain

// Snapshot is the whole store state, the unit of persistence.
// Transactions and expenses are newest first; parties are in insertion order.
type Snapshot struct {
	Transactions  []Transaction
	Parties       []Party
	Expenses      []Expense
	Notifications []Notification
}

// IsEmpty reports whether the snapshot holds no records at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.Transactions) == 0 && len(s.Parties) == 0 && len(s.Expenses) == 0 && len(s.Notifications) == 0
}
