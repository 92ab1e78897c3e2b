// Package console renders budget summaries for the terminal.
package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/tandembudget/tandem/internal/budget"
)

// RenderSummary prints a budget summary as a table with totals.
func RenderSummary(s *budget.Summary) {
	pterm.DefaultSection.Printfln("%s (month key %s)", s.Period.Label, s.MonthKey)

	tableData := pterm.TableData{
		{"Name", "Category", "Budgeted", "Spent", "Available", ""},
	}
	for _, row := range s.Rows {
		marker := ""
		if row.IsExpenseDefault {
			marker = "expense default"
		}
		tableData = append(tableData, []string{
			row.Name,
			rowCategory(row),
			FormatCents(row.BudgetedCents),
			FormatCents(row.SpentCents),
			FormatCents(row.AvailableCents),
			marker,
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithData(tableData).
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		Render(); err != nil {
		pterm.Error.Printfln("failed to render table: %v", err)
		return
	}

	fmt.Println()
	fmt.Printf("Income:         %s\n", FormatCents(s.IncomeCents))
	fmt.Printf("Budgeted:       %s\n", FormatCents(s.BudgetedCents))
	fmt.Printf("Spent:          %s\n", FormatCents(s.SpentCents))
	fmt.Printf("Carryover:      %s\n", FormatCents(s.CarryoverCents))

	tbb := color.New(color.FgGreen, color.Bold)
	if s.ToBeBudgetedCents < 0 {
		tbb = color.New(color.FgRed, color.Bold)
	}
	fmt.Printf("To be budgeted: %s\n", tbb.Sprint(FormatCents(s.ToBeBudgetedCents)))
}

func rowCategory(row budget.Row) string {
	switch row.Type {
	case budget.RowGoal:
		return "goal"
	case budget.RowAsset:
		return "asset"
	default:
		return row.ParentCategory
	}
}

// FormatCents formats integer minor units as a currency string, e.g.
// 187000 -> "$1,870.00" and -500 -> "-$5.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), frac)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	return digits + "," + strings.Join(parts, ",")
}
