// Package split resolves what percentage of a shared cost belongs to the
// partner requesting an individual budget view.
package split

import "errors"

// Errors for split operations
var (
	ErrInvalidSplitType = errors.New("invalid split type")
)

// Type represents how a shared cost is divided between partners
type Type string

const (
	TypeEqual             Type = "equal"
	TypeCustom            Type = "custom"
	TypeIndividualOwner   Type = "individual-owner"
	TypeIndividualPartner Type = "individual-partner"
)

// Validate checks if the split type is valid
func (t Type) Validate() error {
	switch t {
	case TypeEqual, TypeCustom, TypeIndividualOwner, TypeIndividualPartner:
		return nil
	default:
		return ErrInvalidSplitType
	}
}

// Setting represents one split rule. A rule is scoped to either a whole
// category or a single expense definition; expense-level rules take
// precedence.
type Setting struct {
	CategoryName    string  `json:"category_name,omitempty" yaml:"category_name,omitempty"`
	ExpenseID       string  `json:"expense_id,omitempty" yaml:"expense_id,omitempty"`
	Type            Type    `json:"split_type" yaml:"split_type"`
	OwnerPercentage float64 `json:"owner_percentage,omitempty" yaml:"owner_percentage,omitempty"`
}

// ResolvePercentage returns the share (0..100) of a cost attributed to the
// viewer. A nil setting means the cost is unsplit: the viewer carries 100%.
// Only individual budget views apply the result; shared views always use the
// absolute amount.
func ResolvePercentage(s *Setting, viewerID, ownerID string) float64 {
	if s == nil {
		return 100
	}
	viewerIsOwner := viewerID == ownerID
	switch s.Type {
	case TypeEqual:
		return 50
	case TypeCustom:
		if viewerIsOwner {
			return s.OwnerPercentage
		}
		return 100 - s.OwnerPercentage
	case TypeIndividualOwner:
		if viewerIsOwner {
			return 100
		}
		return 0
	case TypeIndividualPartner:
		if viewerIsOwner {
			return 0
		}
		return 100
	default:
		return 100
	}
}

// Settings is a collection of split rules.
type Settings []Setting

// ForExpense returns the rule scoped to the given expense definition, or nil.
func (ss Settings) ForExpense(expenseID string) *Setting {
	if expenseID == "" {
		return nil
	}
	for i := range ss {
		if ss[i].ExpenseID == expenseID {
			return &ss[i]
		}
	}
	return nil
}

// ForCategory returns the rule scoped to the given category, or nil. Rules
// tied to a specific expense never match here.
func (ss Settings) ForCategory(name string) *Setting {
	if name == "" {
		return nil
	}
	for i := range ss {
		if ss[i].ExpenseID == "" && ss[i].CategoryName == name {
			return &ss[i]
		}
	}
	return nil
}

// Resolve returns the viewer's percentage for a cost, preferring an
// expense-level rule, then a category-level rule, then 100 (unsplit).
func (ss Settings) Resolve(expenseID, categoryName, viewerID, ownerID string) float64 {
	if s := ss.ForExpense(expenseID); s != nil {
		return ResolvePercentage(s, viewerID, ownerID)
	}
	if s := ss.ForCategory(categoryName); s != nil {
		return ResolvePercentage(s, viewerID, ownerID)
	}
	return 100
}
