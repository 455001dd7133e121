package chat

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/resolvpay/backend/internal/domain/entity"
)

var dueDaysPattern = regexp.MustCompile(`\b(\d+)\s*days?\b`)

// expenseCategoryWords maps keywords found in a message to an expense
// category label.
var expenseCategoryWords = []struct {
	word     string
	category string
}{
	{"grocer", "Groceries"},
	{"food", "Food"},
	{"lunch", "Food"},
	{"dinner", "Food"},
	{"coffee", "Food"},
	{"restaurant", "Food"},
	{"gas", "Transportation"},
	{"fuel", "Transportation"},
	{"uber", "Transportation"},
	{"transport", "Transportation"},
	{"movie", "Entertainment"},
	{"game", "Entertainment"},
	{"entertainment", "Entertainment"},
	{"clothes", "Shopping"},
	{"shopping", "Shopping"},
	{"amazon", "Shopping"},
	{"electric", "Utilities"},
	{"water", "Utilities"},
	{"utility", "Utilities"},
	{"medical", "Medical"},
	{"doctor", "Medical"},
	{"pharmacy", "Medical"},
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (uc *ProcessMessageUseCase) handleGreeting() string {
	unpaid := 0
	for _, b := range uc.billRepo.All() {
		if !b.Paid {
			unpaid++
		}
	}
	if unpaid == 0 {
		return "Hello! All your bills are paid. Ask me about spending, expenses, or upcoming charges anytime."
	}
	return fmt.Sprintf("Hello! You have %d unpaid bill(s) on record. Ask me what's due soon, your total owed, or log an expense.", unpaid)
}

func (uc *ProcessMessageUseCase) handleHelp() string {
	return strings.Join([]string{
		"Here's what I can do:",
		"- \"what's due soon\" or \"what's due in 14 days\"",
		"- \"what's overdue\" / \"what's due today\"",
		"- \"how much do I owe\"",
		"- \"what's my next bill\"",
		"- \"bills this month\" / \"bills next month\"",
		"- \"show my subscriptions\" / \"which bills are on autopay\"",
		"- \"add expense $12.50 for lunch\"",
		"- \"show my expenses\" / \"spending breakdown\"",
		"- \"give me financial advice\"",
		"- \"find <bill name>\"",
	}, "\n")
}

func (uc *ProcessMessageUseCase) handleAddExpense(ctx context.Context, query string) (string, error) {
	match := amountPattern.FindStringSubmatch(query)
	if match == nil {
		return "I couldn't find an amount in that. Try something like \"add expense $25 for groceries\".", nil
	}
	amount, err := decimal.NewFromString(match[1])
	if err != nil || amount.Sign() <= 0 {
		return "I couldn't find an amount in that. Try something like \"add expense $25 for groceries\".", nil
	}

	category := "Other"
	for _, w := range expenseCategoryWords {
		if strings.Contains(query, w.word) {
			category = w.category
			break
		}
	}

	now := uc.clock.Now()
	expense := entity.NewExpense(uc.expenseRepo.NextID(), amount, category, strings.TrimSpace(query), now)
	uc.expenseRepo.Insert(expense)
	if err := uc.expenseRepo.Save(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Logged %s under %s. You're all set.", money(amount), category), nil
}

func (uc *ProcessMessageUseCase) handleShowExpenses() string {
	expenses := uc.expenseRepo.All()
	if len(expenses) == 0 {
		return "No expenses logged yet. Say something like \"add expense $25 for groceries\" to start."
	}

	sort.Slice(expenses, func(i, j int) bool { return expenses[i].Date.After(expenses[j].Date) })
	if len(expenses) > 10 {
		expenses = expenses[:10]
	}

	var sb strings.Builder
	sb.WriteString("Your recent expenses:\n")
	total := decimal.Zero
	for _, e := range expenses {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", e.Date.Format("Jan 2"), money(e.Amount), e.Category)
		total = total.Add(e.Amount)
	}
	fmt.Fprintf(&sb, "Total shown: %s", money(total))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleExpenseBreakdown() string {
	expenses := uc.expenseRepo.All()
	if len(expenses) == 0 {
		return "No expenses logged yet, so there's nothing to break down."
	}

	totals := map[string]decimal.Decimal{}
	grand := decimal.Zero
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return totals[categories[i]].GreaterThan(totals[categories[j]])
	})

	var sb strings.Builder
	sb.WriteString("Spending by category:\n")
	for _, c := range categories {
		pct := decimal.Zero
		if grand.Sign() > 0 {
			pct = totals[c].Div(grand).Mul(decimal.NewFromInt(100))
		}
		fmt.Fprintf(&sb, "- %s: %s (%s%%)\n", c, money(totals[c]), pct.StringFixed(0))
	}
	fmt.Fprintf(&sb, "Total: %s", money(grand))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleFinancialAdvice() string {
	billTotal := decimal.Zero
	for _, b := range uc.billRepo.All() {
		if !b.Paid {
			billTotal = billTotal.Add(b.Amount)
		}
	}
	expenseTotal := decimal.Zero
	for _, e := range uc.expenseRepo.All() {
		expenseTotal = expenseTotal.Add(e.Amount)
	}

	switch {
	case billTotal.IsZero() && expenseTotal.IsZero():
		return "No unpaid bills and no logged expenses. Log a few expenses and I can spot patterns for you."
	case expenseTotal.GreaterThan(billTotal):
		return fmt.Sprintf("Your logged expenses (%s) exceed your unpaid bills (%s). Discretionary spending is the bigger lever right now; the breakdown command shows where it goes.", money(expenseTotal), money(billTotal))
	default:
		return fmt.Sprintf("Your unpaid bills (%s) outweigh your logged expenses (%s). Prioritize the bills due soonest, and consider autopay for the recurring ones so nothing slips.", money(billTotal), money(expenseTotal))
	}
}

func (uc *ProcessMessageUseCase) handleBillsDueSoon(query string) string {
	days := entity.DueSoonWindowDays
	if m := dueDaysPattern.FindStringSubmatch(query); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil && parsed > 0 {
			days = parsed
		}
	}
	today := entity.NormalizeDate(uc.clock.Now())

	var due []*entity.Bill
	for _, b := range uc.billRepo.All() {
		if b.Paid {
			continue
		}
		d := entity.DaysUntilDue(b.DueDate, today)
		if d >= 0 && d <= days {
			due = append(due, b)
		}
	}
	if len(due) == 0 {
		return fmt.Sprintf("Nothing due in the next %d days. You're in the clear.", days)
	}

	sort.Slice(due, func(i, j int) bool { return due[i].DueDate.Before(due[j].DueDate) })
	var sb strings.Builder
	total := decimal.Zero
	fmt.Fprintf(&sb, "Due in the next %d days:\n", days)
	for _, b := range due {
		fmt.Fprintf(&sb, "- %s: %s on %s\n", b.Name, money(b.Amount), b.DueDate.Format("Jan 2"))
		total = total.Add(b.Amount)
	}
	fmt.Fprintf(&sb, "Total: %s", money(total))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleBillsDueToday() string {
	today := entity.NormalizeDate(uc.clock.Now())
	var due []*entity.Bill
	for _, b := range uc.billRepo.All() {
		if !b.Paid && entity.DaysUntilDue(b.DueDate, today) == 0 {
			due = append(due, b)
		}
	}
	if len(due) == 0 {
		return "Nothing is due today."
	}
	var sb strings.Builder
	sb.WriteString("Due today:\n")
	for _, b := range due {
		fmt.Fprintf(&sb, "- %s: %s\n", b.Name, money(b.Amount))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (uc *ProcessMessageUseCase) handleOverdue() string {
	today := entity.NormalizeDate(uc.clock.Now())
	var overdue []*entity.Bill
	for _, b := range uc.billRepo.All() {
		if b.Status(today) == entity.StatusOverdue {
			overdue = append(overdue, b)
		}
	}
	if len(overdue) == 0 {
		return "Nothing is overdue. Nice work staying on top of things."
	}

	sort.Slice(overdue, func(i, j int) bool { return overdue[i].DueDate.Before(overdue[j].DueDate) })
	var sb strings.Builder
	total := decimal.Zero
	sb.WriteString("Overdue bills:\n")
	for _, b := range overdue {
		late := -entity.DaysUntilDue(b.DueDate, today)
		fmt.Fprintf(&sb, "- %s: %s, %d day(s) late\n", b.Name, money(b.Amount), late)
		total = total.Add(b.Amount)
	}
	fmt.Fprintf(&sb, "Total overdue: %s", money(total))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleTotalOwed() string {
	total := decimal.Zero
	count := 0
	for _, b := range uc.billRepo.All() {
		if !b.Paid {
			total = total.Add(b.Amount)
			count++
		}
	}
	if count == 0 {
		return "You owe nothing right now. Every bill is paid."
	}
	return fmt.Sprintf("You owe %s across %d unpaid bill(s).", money(total), count)
}

func (uc *ProcessMessageUseCase) handleNextBill() string {
	today := entity.NormalizeDate(uc.clock.Now())
	var next *entity.Bill
	for _, b := range uc.billRepo.All() {
		if b.Paid || b.DueDate.Before(today) {
			continue
		}
		if next == nil || b.DueDate.Before(next.DueDate) {
			next = b
		}
	}
	if next == nil {
		return "No upcoming unpaid bills. You're all caught up."
	}
	days := entity.DaysUntilDue(next.DueDate, today)
	if days == 0 {
		return fmt.Sprintf("Your next bill is %s for %s, due today.", next.Name, money(next.Amount))
	}
	return fmt.Sprintf("Your next bill is %s for %s, due %s (%d day(s) from now).", next.Name, money(next.Amount), next.DueDate.Format("Jan 2"), days)
}

func (uc *ProcessMessageUseCase) handleMonthlyBills(query string) string {
	now := uc.clock.Now()
	year, month := now.Year(), now.Month()
	label := "this month"
	if strings.Contains(query, "next month") {
		next := now.AddDate(0, 1, 0)
		year, month = next.Year(), next.Month()
		label = "next month"
	}

	var matched []*entity.Bill
	total := decimal.Zero
	for _, b := range uc.billRepo.All() {
		if b.DueDate.Year() == year && b.DueDate.Month() == month {
			matched = append(matched, b)
			total = total.Add(b.Amount)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("No bills fall due %s.", label)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].DueDate.Before(matched[j].DueDate) })
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bills due %s:\n", label)
	for _, b := range matched {
		status := "unpaid"
		if b.Paid {
			status = "paid"
		}
		fmt.Fprintf(&sb, "- %s: %s on %s (%s)\n", b.Name, money(b.Amount), b.DueDate.Format("Jan 2"), status)
	}
	fmt.Fprintf(&sb, "Total: %s", money(total))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleBillSummary() string {
	bills := uc.billRepo.All()
	if len(bills) == 0 {
		return "You have no bills on record yet."
	}
	today := entity.NormalizeDate(uc.clock.Now())

	paid, overdue, dueSoon := 0, 0, 0
	owed := decimal.Zero
	for _, b := range bills {
		switch b.Status(today) {
		case entity.StatusPaid:
			paid++
		case entity.StatusOverdue:
			overdue++
			owed = owed.Add(b.Amount)
		case entity.StatusDueSoon:
			dueSoon++
			owed = owed.Add(b.Amount)
		default:
			owed = owed.Add(b.Amount)
		}
	}
	return fmt.Sprintf("You have %d bill(s): %d paid, %d overdue, %d due within %d days. Outstanding balance: %s.",
		len(bills), paid, overdue, dueSoon, entity.DueSoonWindowDays, money(owed))
}

func (uc *ProcessMessageUseCase) handleSubscriptions() string {
	var recurring []*entity.Bill
	total := decimal.Zero
	for _, b := range uc.billRepo.All() {
		if b.Frequency == entity.FrequencyOneTime {
			continue
		}
		recurring = append(recurring, b)
		total = total.Add(b.Amount)
	}
	if len(recurring) == 0 {
		return "You have no recurring bills or subscriptions on record."
	}

	var sb strings.Builder
	sb.WriteString("Your recurring bills:\n")
	for _, b := range recurring {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", b.Name, money(b.Amount), b.Frequency)
	}
	fmt.Fprintf(&sb, "Combined: %s per cycle", money(total))
	return sb.String()
}

func (uc *ProcessMessageUseCase) handleAutopay(query string) string {
	wantManual := strings.Contains(query, "manual") || strings.Contains(query, "not on autopay")

	var matched []*entity.Bill
	for _, b := range uc.billRepo.All() {
		if b.Autopay != wantManual {
			matched = append(matched, b)
		}
	}

	if wantManual {
		if len(matched) == 0 {
			return "Every bill is on autopay. Nothing needs a manual payment."
		}
		var sb strings.Builder
		sb.WriteString("Bills you pay manually:\n")
		for _, b := range matched {
			fmt.Fprintf(&sb, "- %s: %s\n", b.Name, money(b.Amount))
		}
		return strings.TrimRight(sb.String(), "\n")
	}

	if len(matched) == 0 {
		return "None of your bills are on autopay."
	}
	var sb strings.Builder
	sb.WriteString("Bills on autopay:\n")
	for _, b := range matched {
		fmt.Fprintf(&sb, "- %s: %s\n", b.Name, money(b.Amount))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (uc *ProcessMessageUseCase) handleMarkPaid() string {
	return "I can't mark bills paid from chat yet. Use the pay action on the bill itself and I'll pick up the change right away."
}

func (uc *ProcessMessageUseCase) handleCategoryBills(query string) string {
	var category string
	for _, c := range knownCategories {
		if strings.Contains(query, c) {
			category = c
			break
		}
	}
	if category == "" {
		return uc.handleDefault()
	}

	var matched []*entity.Bill
	total := decimal.Zero
	for _, b := range uc.billRepo.All() {
		if strings.EqualFold(b.Category, category) || strings.Contains(strings.ToLower(b.Category), category) {
			matched = append(matched, b)
			total = total.Add(b.Amount)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("No bills found in the %s category.", category)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your %s bills:\n", category)
	for _, b := range matched {
		fmt.Fprintf(&sb, "- %s: %s due %s\n", b.Name, money(b.Amount), b.DueDate.Format("Jan 2"))
	}
	fmt.Fprintf(&sb, "Total: %s", money(total))
	return sb.String()
}

var searchStopWords = compileAll(`\bfind\b`, `\bsearch\b`, `\bshow\b`, `\bget\b`, `\bfor\b`, `\bmy\b`, `\bme\b`, `\bbills?\b`, `\bthe\b`)

func (uc *ProcessMessageUseCase) handleSearchBill(query string) string {
	term := query
	for _, p := range searchStopWords {
		term = p.ReplaceAllString(term, " ")
	}
	term = strings.TrimSpace(regexp.MustCompile(`\s+`).ReplaceAllString(term, " "))
	if term == "" {
		return "Tell me what to look for, like \"find netflix\"."
	}

	today := entity.NormalizeDate(uc.clock.Now())
	var matched []*entity.Bill
	for _, b := range uc.billRepo.All() {
		if strings.Contains(strings.ToLower(b.Name), term) {
			matched = append(matched, b)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf("I couldn't find a bill matching %q.", term)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d bill(s) matching %q:\n", len(matched), term)
	for _, b := range matched {
		fmt.Fprintf(&sb, "- %s: %s due %s (%s)\n", b.Name, money(b.Amount), b.DueDate.Format("Jan 2"), b.Status(today))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (uc *ProcessMessageUseCase) handleDefault() string {
	return "I didn't catch that. Ask me things like \"what's due soon\", \"how much do I owe\", or \"add expense $20 for gas\". Say \"help\" for the full list."
}
