// Package models defines the client-side shapes of backend-owned Splits
// entities. The backend owns their lifecycle, validation and persistence;
// the client only normalizes a few wire quirks after fetch:
//
//   - documents identify themselves as "_id"; the client exposes "ID"
//   - member contact numbers arrive either as JSON strings or numbers
package models

import (
	"encoding/json"
	"time"
)

// Member is a participant of a group.
type Member struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// UnmarshalJSON maps "_id" to ID (preferring "_id" when both are present)
// and accepts numeric contact values.
func (m *Member) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string     `json:"id"`
		DocID   string     `json:"_id"`
		Name    string     `json:"name"`
		Contact flexString `json:"contact"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	if raw.DocID != "" {
		m.ID = raw.DocID
	}
	m.Name = raw.Name
	m.Contact = string(raw.Contact)
	return nil
}

// Group is a shared-expense group with its members.
type Group struct {
	ID        string    `json:"id"`
	GroupName string    `json:"groupName"`
	Members   []Member  `json:"members"`
	Expenses  []Expense `json:"expenses"`
}

func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string    `json:"id"`
		DocID     string    `json:"_id"`
		GroupName string    `json:"groupName"`
		Members   []Member  `json:"members"`
		Expenses  []Expense `json:"expenses"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.ID = raw.ID
	if raw.DocID != "" {
		g.ID = raw.DocID
	}
	g.GroupName = raw.GroupName
	g.Members = raw.Members
	g.Expenses = raw.Expenses
	return nil
}

// Expense is a recorded group expense, paid by one member and shared by others.
type Expense struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	PaidBy      Member   `json:"paidBy"`
	SharedBy    []Member `json:"sharedby"`
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string   `json:"id"`
		DocID       string   `json:"_id"`
		Description string   `json:"description"`
		Amount      float64  `json:"amount"`
		PaidBy      Member   `json:"paidBy"`
		SharedBy    []Member `json:"sharedby"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.ID = raw.ID
	if raw.DocID != "" {
		e.ID = raw.DocID
	}
	e.Description = raw.Description
	e.Amount = raw.Amount
	e.PaidBy = raw.PaidBy
	e.SharedBy = raw.SharedBy
	return nil
}

// Payment is one suggested transfer inside a balance entry.
type Payment struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// BalanceEntry is the backend's who-owes-whom shape: a single-key object
// mapping a debtor's name to the payments that would settle them up.
type BalanceEntry map[string][]Payment

// Person returns the debtor's name, or "" for an empty entry.
func (b BalanceEntry) Person() string {
	for name := range b {
		return name
	}
	return ""
}

// Payments returns the suggested transfers for the debtor.
func (b BalanceEntry) Payments() []Payment {
	return b[b.Person()]
}

// Settlement is a recorded payment resolving a balance between two members.
type Settlement struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	FromName  string    `json:"fromName"`
	ToName    string    `json:"toName"`
	Amount    float64   `json:"amount"`
	SettledAt time.Time `json:"settledAt"`
}

// GroupActivity is the response of the expenses endpoint: the expense log
// plus the backend-computed pending balance and settlement history.
type GroupActivity struct {
	Expenses    []Expense      `json:"expenses"`
	Balance     []BalanceEntry `json:"balance"`
	Settlements []Settlement   `json:"settlements"`
}

// NewExpense is the payload for recording an expense.
type NewExpense struct {
	Amount      float64  `json:"amount"`
	Description string   `json:"description"`
	PaidBy      Member   `json:"paidBy"`
	SharedBy    []Member `json:"sharedby"`
}

// NewSettlement is the payload for marking a pending payment as settled.
type NewSettlement struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	FromName string  `json:"fromName"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
