// Package chat contains the rule-based bill assistant.
package chat

import (
	"regexp"
	"strings"
)

// Intent identifies what a chat message is asking for.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentHelp             Intent = "help"
	IntentAddExpense       Intent = "add_expense"
	IntentShowExpenses     Intent = "show_expenses"
	IntentExpenseBreakdown Intent = "expense_breakdown"
	IntentFinancialAdvice  Intent = "financial_advice"
	IntentBillsDueSoon     Intent = "bills_due_soon"
	IntentBillsDueToday    Intent = "bills_due_today"
	IntentBillsOverdue     Intent = "bills_overdue"
	IntentTotalOwed        Intent = "total_owed"
	IntentNextBill         Intent = "next_bill"
	IntentMonthlyBills     Intent = "monthly_bills"
	IntentBillSummary      Intent = "bill_summary"
	IntentSubscriptions    Intent = "subscriptions"
	IntentAutopay          Intent = "autopay"
	IntentMarkPaid         Intent = "mark_paid"
	IntentCategoryBills    Intent = "category_bills"
	IntentSearchBill       Intent = "search_bill"
	IntentUnknown          Intent = "unknown"
)

var (
	moneyPattern  = regexp.MustCompile(`\$?\d+\.?\d*`)
	amountPattern = regexp.MustCompile(`\$?([\d.]+)`)
)

// knownCategories are the category words the assistant recognizes in
// free-form queries.
var knownCategories = []string{
	"utilities", "loans", "insurance", "rent", "mortgage", "credit card",
	"medical", "childcare", "transportation", "entertainment", "subscription",
}

// intentRule maps a set of patterns to an intent. Rules are evaluated in
// order; the first match wins, so more specific rules come first.
type intentRule struct {
	intent   Intent
	patterns []*regexp.Regexp
}

var intentRules = []intentRule{
	{IntentGreeting, compileAll(`\bhello\b`, `\bhi\b`, `\bhey\b`, `greetings`, `howdy`)},
	{IntentHelp, compileAll(`\bhelp\b`, `what can you`, `how do i`, `\boptions\b`, `capabilities`)},
	{IntentExpenseBreakdown, compileAll(`breakdown`, `spending`)},
	{IntentShowExpenses, compileAll(`list.*expense`, `all.*expense`, `show.*expense`)},
	{IntentFinancialAdvice, compileAll(`advice`, `optimize`, `\bsave\b`, `financial`, `budget`)},
	{IntentBillsDueToday, compileAll(`due.*today`, `\btoday\b`)},
	{IntentBillsDueSoon, compileAll(`due.*week`, `\bweek\b`, `coming up`, `upcoming`)},
	{IntentBillsOverdue, compileAll(`overdue`, `\blate\b`, `past due`, `missed`)},
	{IntentTotalOwed, compileAll(`total.*owe`, `how much.*owe`, `total due`, `\bsum\b`, `altogether`)},
	{IntentMonthlyBills, compileAll(`\bmonth\b`, `monthly`, `this month`, `each month`)},
	{IntentBillSummary, compileAll(`summary`, `overview`, `\bstatus\b`, `snapshot`)},
	{IntentSubscriptions, compileAll(`subscriptions?\b`, `recurring`)},
	{IntentAutopay, compileAll(`autopay`, `auto pay`, `automatic`)},
	{IntentMarkPaid, compileAll(`mark.*paid`, `\bpaid\b`, `\bpay\b`)},
}

// searchPatterns is checked last so a category mention wins over a
// generic "show"/"find".
var searchPatterns = compileAll(`\bfind\b`, `\bsearch\b`, `\bshow\b`, `\bget\b`)

var (
	expenseActionPatterns = compileAll(`\badd\b`, `\blog\b`, `\brecord\b`, `\bspent\b`, `expense`)
	nextWordPatterns      = compileAll(`\bnext\b`, `upcoming`, `coming up`)
	billWordPatterns      = compileAll(`\bbill\b`, `payment`)
)

// recognizeIntent classifies a normalized (lowercased, trimmed) query.
func recognizeIntent(query string) Intent {
	// Expense logging needs both an action word and a money mention.
	if matchAny(query, expenseActionPatterns) && moneyPattern.MatchString(query) {
		return IntentAddExpense
	}

	// "next bill / next payment" beats the generic rules below.
	if matchAny(query, nextWordPatterns) && matchAny(query, billWordPatterns) {
		return IntentNextBill
	}

	for _, rule := range intentRules {
		if matchAny(query, rule.patterns) {
			return rule.intent
		}
	}

	for _, cat := range knownCategories {
		if strings.Contains(query, cat) {
			return IntentCategoryBills
		}
	}

	if matchAny(query, searchPatterns) {
		return IntentSearchBill
	}

	return IntentUnknown
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// matchAny reports whether any of the patterns matches the text.
func matchAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
