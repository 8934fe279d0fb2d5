package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/splits-cli/internal/client/models"
)

// pendingPayment is one flattened entry of the backend-computed balance,
// numbered for the 'settle <number>' command.
type pendingPayment struct {
	From   string
	To     string
	Amount float64
}

// pendingPayments flattens the balance entries in a stable order, so the
// numbers shown by 'balance' stay valid for 'settle' until the next refresh.
func (a *App) pendingPayments() []pendingPayment {
	var pending []pendingPayment
	for _, entry := range a.activity.Balance {
		person := entry.Person()
		for _, p := range entry.Payments() {
			pending = append(pending, pendingPayment{From: person, To: p.To, Amount: p.Amount})
		}
	}
	return pending
}

// ShowExpenses prints the group's expense log.
func (a *App) ShowExpenses() {
	if len(a.activity.Expenses) == 0 {
		printlnFn("No expenses yet. Type 'addexpense' to start tracking!")
		return
	}
	for _, e := range a.activity.Expenses {
		names := make([]string, 0, len(e.SharedBy))
		for _, m := range e.SharedBy {
			names = append(names, m.Name)
		}
		printfFn("%s: %.2f paid by %s, split between %s\n",
			e.Description, e.Amount, e.PaidBy.Name, strings.Join(names, ", "))
	}
}

// ShowBalance prints the pending settlements computed by the backend.
func (a *App) ShowBalance() {
	pending := a.pendingPayments()
	if len(pending) == 0 {
		printlnFn("All settled up! Everyone is even.")
		return
	}
	printlnFn("Pending settlements (type 'settle <number>' to record a payment):")
	for i, p := range pending {
		printfFn("%d. %s owes %.2f to %s\n", i+1, p.From, p.Amount, p.To)
	}
}

// ShowSettlements prints the completed settlement history.
func (a *App) ShowSettlements() {
	if len(a.activity.Settlements) == 0 {
		printlnFn("No completed settlements yet.")
		return
	}
	for _, s := range a.activity.Settlements {
		printfFn("%s paid %.2f to %s on %s\n",
			s.FromName, s.Amount, s.ToName, s.SettledAt.Format("2006-01-02"))
	}
}

// ShowMembers prints the group's members. The printed numbers are what
// 'addexpense' and 'removemember' accept.
func (a *App) ShowMembers() {
	for i, m := range a.group.Members {
		printfFn("%d. %s (contact %s)\n", i+1, m.Name, m.Contact)
	}
}

// AddExpense prompts for an expense form and records it. Every field is
// validated locally before the request goes out.
func (a *App) AddExpense(ctx context.Context) error {
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		return failValidation("Please enter a description")
	}

	amountText, err := getSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || amount <= 0 {
		return failValidation("Amount must be a positive number")
	}

	a.ShowMembers()

	payerText, err := getSimpleText(a.reader, "Paid by (member number)", os.Stdout)
	if err != nil {
		return err
	}
	payer, ok := a.memberByNumber(payerText)
	if !ok {
		return failValidation("Please select who paid")
	}

	sharersText, err := getSimpleText(a.reader, "Split between (member numbers, comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	sharers, ok := a.membersByNumbers(sharersText)
	if !ok || len(sharers) == 0 {
		return failValidation("Please select who shared the expense")
	}

	expense := models.NewExpense{
		Amount:      amount,
		Description: description,
		PaidBy:      *payer,
		SharedBy:    sharers,
	}
	if err := a.api.AddExpense(ctx, a.group.ID, expense); err != nil {
		reportErr(err)
		return err
	}
	printlnFn("Expense added!")
	return a.refreshGroupData(ctx)
}

// AddMember prompts for a new member and adds them to the group. A contact
// already in the group is rejected locally.
func (a *App) AddMember(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Member name", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return failValidation("Please enter member name")
	}

	contact, err := getSimpleText(a.reader, "Member contact number", os.Stdout)
	if err != nil {
		return err
	}
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return failValidation("Please enter member contact")
	}
	for _, m := range a.group.Members {
		if m.Contact == contact {
			return failValidation("This member is already in the group")
		}
	}

	if err := a.api.AddMember(ctx, a.group.ID, name, contact); err != nil {
		reportErr(err)
		return err
	}
	printlnFn("Member added!")
	return a.refreshGroupData(ctx)
}

// RemoveMember prompts for a member number and removes that member after
// confirmation.
func (a *App) RemoveMember(ctx context.Context) error {
	a.ShowMembers()

	numText, err := getSimpleText(a.reader, "Remove which member (number)", os.Stdout)
	if err != nil {
		return err
	}
	member, ok := a.memberByNumber(numText)
	if !ok {
		return failValidation("Please select a member to remove")
	}

	confirmed, err := getConfirm(a.reader, fmt.Sprintf("Remove %s? [y/N]", member.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.api.RemoveMember(ctx, a.group.ID, member.Contact); err != nil {
		reportErr(err)
		return err
	}
	printlnFn("Member removed!")
	return a.refreshGroupData(ctx)
}

// Settle records the pending payment with the given number from the last
// 'balance' output. The balance names members by display name; their contact
// numbers are resolved from the group's member list.
func (a *App) Settle(ctx context.Context, arg string) error {
	pending := a.pendingPayments()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(pending) {
		return failValidation("No such pending settlement, type 'balance' to list them")
	}
	p := pending[n-1]

	from := a.memberByName(p.From)
	to := a.memberByName(p.To)
	if from == nil || to == nil {
		return failValidation("Could not find member details for settlement")
	}

	settlement := models.NewSettlement{
		From:     from.Contact,
		To:       to.Contact,
		FromName: p.From,
		ToName:   p.To,
		Amount:   p.Amount,
	}
	if err := a.api.AddSettlement(ctx, a.group.ID, settlement); err != nil {
		reportErr(err)
		return err
	}
	printlnFn("Settlement recorded!")
	return a.refreshGroupData(ctx)
}

// memberByNumber resolves a 1-based member number from ShowMembers output.
func (a *App) memberByNumber(text string) (*models.Member, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(a.group.Members) {
		return nil, false
	}
	return &a.group.Members[n-1], true
}

// membersByNumbers resolves a comma-separated list of member numbers,
// dropping duplicates. Returns false when any entry is invalid.
func (a *App) membersByNumbers(text string) ([]models.Member, bool) {
	seen := make(map[int]struct{})
	var members []models.Member

	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(a.group.Members) {
			return nil, false
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		members = append(members, a.group.Members[n-1])
	}
	return members, true
}

func (a *App) memberByName(name string) *models.Member {
	for i, m := range a.group.Members {
		if m.Name == name {
			return &a.group.Members[i]
		}
	}
	return nil
}
