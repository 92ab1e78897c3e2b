// Package budget computes the periodic household budget summary: expected
// income, assigned category budgets, recurring-expense defaults, actual
// spend, and goal/asset contributions reconciled into one report.
//
// The engine is stateless and pure. Every call is a deterministic function
// of the snapshot it is handed, including the reference instant; it never
// reads the wall clock, performs I/O, or mutates its inputs. Fetching the
// records and persisting the result are the caller's concern.
package budget

import (
	"errors"
	"time"

	"github.com/tandembudget/tandem/internal/frequency"
	"github.com/tandembudget/tandem/internal/period"
	"github.com/tandembudget/tandem/internal/recurrence"
	"github.com/tandembudget/tandem/internal/split"
)

// Errors for budget summary operations
var (
	ErrNilSnapshot        = errors.New("snapshot is required")
	ErrInvalidViewMode    = errors.New("invalid view mode")
	ErrInvalidMethodology = errors.New("invalid budget methodology")
	ErrInvalidSourceType  = errors.New("invalid income source type")
)

// ViewMode selects whose share of shared costs the summary reflects
type ViewMode string

const (
	ViewShared     ViewMode = "shared"     // absolute household amounts
	ViewIndividual ViewMode = "individual" // viewer's split share only
)

// Validate checks if the view mode is valid
func (v ViewMode) Validate() error {
	switch v {
	case ViewShared, ViewIndividual:
		return nil
	default:
		return ErrInvalidViewMode
	}
}

// Methodology represents how the budget's income figure is determined
type Methodology string

const (
	MethodologyStandard Methodology = "standard" // income aggregated from sources
	MethodologyCustom   Methodology = "custom"   // caller supplies a fixed total
)

// Validate checks if the methodology is valid
func (m Methodology) Validate() error {
	switch m {
	case MethodologyStandard, MethodologyCustom:
		return nil
	default:
		return ErrInvalidMethodology
	}
}

// CarryoverMode represents how unspent funds roll between periods. Only
// "none" is implemented; the mode is kept in the snapshot so future modes
// slot in without changing the call surface.
type CarryoverMode string

const (
	CarryoverNone CarryoverMode = "none"
)

// SourceType represents the kind of income source
type SourceType string

const (
	SourceRecurringSalary SourceType = "recurring-salary"
	SourceOneOff          SourceType = "one-off"
)

// Validate checks if the source type is valid
func (t SourceType) Validate() error {
	switch t {
	case SourceRecurringSalary, SourceOneOff:
		return nil
	default:
		return ErrInvalidSourceType
	}
}

// AssignmentType represents what a manual assignment funds
type AssignmentType string

const (
	AssignmentCategory AssignmentType = "category"
	AssignmentGoal     AssignmentType = "goal"
	AssignmentAsset    AssignmentType = "asset"
)

// RowType represents the kind of summary row
type RowType string

const (
	RowSubcategory RowType = "subcategory"
	RowGoal        RowType = "goal"
	RowAsset       RowType = "asset"
)

// IncomeSource represents one expected income stream
type IncomeSource struct {
	AmountCents           int64               `json:"amount_cents" yaml:"amount_cents"`
	Frequency             frequency.Frequency `json:"frequency" yaml:"frequency"`
	SourceType            SourceType          `json:"source_type" yaml:"source_type"`
	OwnerUserID           string              `json:"owner_user_id" yaml:"owner_user_id"`
	IsReceived            bool                `json:"is_received,omitempty" yaml:"is_received,omitempty"`
	ReceivedDate          *time.Time          `json:"received_date,omitempty" yaml:"received_date,omitempty"`
	IsManualPartnerIncome bool                `json:"is_manual_partner_income,omitempty" yaml:"is_manual_partner_income,omitempty"`
}

// Assignment represents one manual allocation for one month key. An
// AssignedCents of exactly 0 is a seeded placeholder row, not a real
// commitment: it keeps the row visible but never blocks an expense default.
type Assignment struct {
	CategoryName    string         `json:"category_name" yaml:"category_name"`
	SubcategoryName string         `json:"subcategory_name,omitempty" yaml:"subcategory_name,omitempty"`
	AssignedCents   int64          `json:"assigned_cents" yaml:"assigned_cents"`
	Type            AssignmentType `json:"assignment_type" yaml:"assignment_type"`
	GoalID          string         `json:"goal_id,omitempty" yaml:"goal_id,omitempty"`
	AssetID         string         `json:"asset_id,omitempty" yaml:"asset_id,omitempty"`
}

// ExpenseDefinition represents a recurring expense that supplies a default
// budgeted amount when no positive manual assignment covers its key.
type ExpenseDefinition struct {
	ID                  string             `json:"id" yaml:"id"`
	CategoryName        string             `json:"category_name" yaml:"category_name"`
	ExpectedAmountCents int64              `json:"expected_amount_cents" yaml:"expected_amount_cents"`
	Recurrence          recurrence.Pattern `json:"recurrence_type" yaml:"recurrence_type"`
	InferredSubcategory string             `json:"inferred_subcategory,omitempty" yaml:"inferred_subcategory,omitempty"`
	NextDueDate         *time.Time         `json:"next_due_date,omitempty" yaml:"next_due_date,omitempty"`
}

// Transaction represents one settled bank transaction. Negative amounts are
// spend; positive amounts are income and ignored by the spend aggregator.
type Transaction struct {
	ID                      string    `json:"id" yaml:"id"`
	AmountCents             int64     `json:"amount_cents" yaml:"amount_cents"`
	CategoryID              string    `json:"category_id" yaml:"category_id"`
	CreatedAt               time.Time `json:"created_at" yaml:"created_at"`
	SplitOverridePercentage *float64  `json:"split_override_percentage,omitempty" yaml:"split_override_percentage,omitempty"`
	MatchedExpenseID        string    `json:"matched_expense_id,omitempty" yaml:"matched_expense_id,omitempty"`
}

// CategoryMapping maps an external (bank) category ID onto the display
// hierarchy.
type CategoryMapping struct {
	ExternalCategoryID string `json:"external_category_id" yaml:"external_category_id"`
	ParentName         string `json:"parent_name" yaml:"parent_name"`
	ChildName          string `json:"child_name" yaml:"child_name"`
}

// Goal represents a savings goal
type Goal struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	TargetCents int64  `json:"target_cents" yaml:"target_cents"`
}

// Asset represents a tracked asset receiving contributions
type Asset struct {
	ID                string `json:"id" yaml:"id"`
	Name              string `json:"name" yaml:"name"`
	CurrentValueCents int64  `json:"current_value_cents" yaml:"current_value_cents"`
}

// Snapshot is the complete read-only input for one summary computation.
// Collaborators assemble it (from storage, bank sync, UI state) and hand it
// over; the engine neither fetches nor mutates anything.
type Snapshot struct {
	Reference  time.Time   `json:"reference" yaml:"reference"`
	PeriodType period.Type `json:"period_type,omitempty" yaml:"period_type,omitempty"`
	Timezone   string      `json:"timezone,omitempty" yaml:"timezone,omitempty"`

	View         ViewMode `json:"view,omitempty" yaml:"view,omitempty"`
	ViewerUserID string   `json:"viewer_user_id,omitempty" yaml:"viewer_user_id,omitempty"`
	OwnerUserID  string   `json:"owner_user_id,omitempty" yaml:"owner_user_id,omitempty"`

	Methodology      Methodology   `json:"methodology,omitempty" yaml:"methodology,omitempty"`
	TotalBudgetCents int64         `json:"total_budget_cents,omitempty" yaml:"total_budget_cents,omitempty"`
	CarryoverMode    CarryoverMode `json:"carryover_mode,omitempty" yaml:"carryover_mode,omitempty"`

	IncomeSources    []IncomeSource      `json:"income_sources,omitempty" yaml:"income_sources,omitempty"`
	Assignments      []Assignment        `json:"assignments,omitempty" yaml:"assignments,omitempty"`
	Expenses         []ExpenseDefinition `json:"expenses,omitempty" yaml:"expenses,omitempty"`
	SplitSettings    split.Settings      `json:"split_settings,omitempty" yaml:"split_settings,omitempty"`
	Transactions     []Transaction       `json:"transactions,omitempty" yaml:"transactions,omitempty"`
	CategoryMappings []CategoryMapping   `json:"category_mappings,omitempty" yaml:"category_mappings,omitempty"`

	Goals              []Goal           `json:"goals,omitempty" yaml:"goals,omitempty"`
	Assets             []Asset          `json:"assets,omitempty" yaml:"assets,omitempty"`
	GoalContributions  map[string]int64 `json:"goal_contributions,omitempty" yaml:"goal_contributions,omitempty"`
	AssetContributions map[string]int64 `json:"asset_contributions,omitempty" yaml:"asset_contributions,omitempty"`
}

// Validate validates the snapshot's enum fields. Empty values are allowed
// and defaulted in Summarize.
func (s *Snapshot) Validate() error {
	if s.Reference.IsZero() {
		return errors.New("reference instant is required")
	}
	if s.PeriodType != "" {
		if err := s.PeriodType.Validate(); err != nil {
			return err
		}
	}
	if s.View != "" {
		if err := s.View.Validate(); err != nil {
			return err
		}
	}
	if s.Methodology != "" {
		if err := s.Methodology.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Row is one line of the summary: a spending subcategory, a goal, or an
// asset.
type Row struct {
	ID               string  `json:"id" yaml:"id"`
	Type             RowType `json:"type" yaml:"type"`
	Name             string  `json:"name" yaml:"name"`
	ParentCategory   string  `json:"parent_category,omitempty" yaml:"parent_category,omitempty"`
	BudgetedCents    int64   `json:"budgeted_cents" yaml:"budgeted_cents"`
	SpentCents       int64   `json:"spent_cents" yaml:"spent_cents"`
	AvailableCents   int64   `json:"available_cents" yaml:"available_cents"`
	IsExpenseDefault bool    `json:"is_expense_default" yaml:"is_expense_default"`
}

// Summary is the assembled budget report for one period.
type Summary struct {
	Period   period.Range `json:"period" yaml:"period"`
	MonthKey string       `json:"month_key" yaml:"month_key"`

	IncomeCents       int64 `json:"income_cents" yaml:"income_cents"`
	BudgetedCents     int64 `json:"budgeted_cents" yaml:"budgeted_cents"`
	SpentCents        int64 `json:"spent_cents" yaml:"spent_cents"`
	CarryoverCents    int64 `json:"carryover_cents" yaml:"carryover_cents"`
	ToBeBudgetedCents int64 `json:"to_be_budgeted_cents" yaml:"to_be_budgeted_cents"`

	Rows []Row `json:"rows" yaml:"rows"`
}

// categoryKey builds the map key for a category/subcategory pair. A missing
// subcategory keys on the category alone.
func categoryKey(parent, child string) string {
	if child == "" {
		return parent
	}
	return parent + "::" + child
}
