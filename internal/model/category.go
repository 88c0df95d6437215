package model

import "github.com/google/uuid"

// Category represents a transaction category. Predefined categories have
// fixed string IDs and exist for the process lifetime; custom categories
// are user-created with generated IDs and can only be deleted, not edited.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Type     TransactionType
	IsCustom bool
}

// Uncategorized is the sentinel category that transactions fall back to
// when the category they reference has been deleted. It is never listed
// for selection and can never be deleted itself.
var Uncategorized = Category{
	ID:   "uncategorized",
	Name: "未分类",
	Icon: "❓",
	Type: TypeExpense,
}

// Fallback categories used when a parsed category name has no match.
const (
	DefaultExpenseCategoryID = "misc"
	DefaultIncomeCategoryID  = "misc-income"
)

// DefaultCategories returns the predefined catalog, expense categories
// first, in fixed display order.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "餐饮", Icon: "🍜", Type: TypeExpense},
		{ID: "transport", Name: "交通", Icon: "🚗", Type: TypeExpense},
		{ID: "shopping", Name: "购物", Icon: "🛍️", Type: TypeExpense},
		{ID: "entertainment", Name: "娱乐", Icon: "🎮", Type: TypeExpense},
		{ID: "housing", Name: "居住", Icon: "🏠", Type: TypeExpense},
		{ID: "medical", Name: "医疗", Icon: "💊", Type: TypeExpense},
		{ID: DefaultExpenseCategoryID, Name: "其他", Icon: "📦", Type: TypeExpense},
		{ID: "salary", Name: "工资", Icon: "💰", Type: TypeIncome},
		{ID: "bonus", Name: "奖金", Icon: "🎁", Type: TypeIncome},
		{ID: "red-packet", Name: "红包", Icon: "🧧", Type: TypeIncome},
		{ID: DefaultIncomeCategoryID, Name: "其他收入", Icon: "💼", Type: TypeIncome},
	}
}

// NewCustomCategory creates a user-defined category with a generated ID.
func NewCustomCategory(name, icon string, txType TransactionType) Category {
	return Category{
		ID:       uuid.NewString(),
		Name:     name,
		Icon:     icon,
		Type:     txType,
		IsCustom: true,
	}
}
