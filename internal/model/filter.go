package model

import (
	"fmt"
	"time"
)

// Filter is the closed set of transaction list filters. Each variant
// carries its own parameters and knows how to match a transaction and
// describe itself for display.
type Filter interface {
	Matches(t Transaction) bool
	DisplayName() string
}

// FilterAll matches every transaction.
type FilterAll struct{}

func (FilterAll) Matches(Transaction) bool { return true }
func (FilterAll) DisplayName() string      { return "全部" }

// FilterByType matches transactions of a single type.
type FilterByType struct {
	Type TransactionType
}

func (f FilterByType) Matches(t Transaction) bool { return t.Type == f.Type }
func (f FilterByType) DisplayName() string        { return f.Type.Label() }

// FilterByCategory matches transactions referencing a category.
type FilterByCategory struct {
	Category Category
}

func (f FilterByCategory) Matches(t Transaction) bool { return t.CategoryID == f.Category.ID }
func (f FilterByCategory) DisplayName() string        { return f.Category.Name }

// FilterByYear matches transactions within a calendar year.
type FilterByYear struct {
	Year int
}

func (f FilterByYear) Matches(t Transaction) bool { return t.Date.Year() == f.Year }
func (f FilterByYear) DisplayName() string        { return fmt.Sprintf("%d年", f.Year) }

// FilterByMonth matches transactions within a calendar year and month.
type FilterByMonth struct {
	Year  int
	Month time.Month
}

func (f FilterByMonth) Matches(t Transaction) bool {
	return t.Date.Year() == f.Year && t.Date.Month() == f.Month
}

func (f FilterByMonth) DisplayName() string {
	return fmt.Sprintf("%d年%d月", f.Year, int(f.Month))
}

// FilterByYearAndType combines a year window with a transaction type.
type FilterByYearAndType struct {
	Year int
	Type TransactionType
}

func (f FilterByYearAndType) Matches(t Transaction) bool {
	return t.Date.Year() == f.Year && t.Type == f.Type
}

func (f FilterByYearAndType) DisplayName() string {
	return fmt.Sprintf("%d年 · %s", f.Year, f.Type.Label())
}

// FilterByMonthAndType combines a month window with a transaction type.
type FilterByMonthAndType struct {
	Year  int
	Month time.Month
	Type  TransactionType
}

func (f FilterByMonthAndType) Matches(t Transaction) bool {
	return t.Date.Year() == f.Year && t.Date.Month() == f.Month && t.Type == f.Type
}

func (f FilterByMonthAndType) DisplayName() string {
	return fmt.Sprintf("%d年%d月 · %s", f.Year, int(f.Month), f.Type.Label())
}

// FilterByYearAndCategory combines a year window with a category.
type FilterByYearAndCategory struct {
	Year     int
	Category Category
}

func (f FilterByYearAndCategory) Matches(t Transaction) bool {
	return t.Date.Year() == f.Year && t.CategoryID == f.Category.ID
}

func (f FilterByYearAndCategory) DisplayName() string {
	return fmt.Sprintf("%d年 · %s", f.Year, f.Category.Name)
}

// FilterByMonthAndCategory combines a month window with a category.
type FilterByMonthAndCategory struct {
	Year     int
	Month    time.Month
	Category Category
}

func (f FilterByMonthAndCategory) Matches(t Transaction) bool {
	return t.Date.Year() == f.Year && t.Date.Month() == f.Month && t.CategoryID == f.Category.ID
}

func (f FilterByMonthAndCategory) DisplayName() string {
	return fmt.Sprintf("%d年%d月 · %s", f.Year, int(f.Month), f.Category.Name)
}
