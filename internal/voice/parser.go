// Package voice extracts a structured transaction from a transcribed
// spoken sentence using ordered keyword and pattern rules.
package voice

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hualei/lingqian/internal/model"
)

// Parse failures. Only a missing amount fails the parse; every other
// stage degrades to a default.
var (
	ErrEmptyInput = errors.New("empty input")
	ErrNoAmount   = errors.New("no amount found in text")
)

// ParsedTransaction is the parser's candidate result. Category is a
// display name, not a resolved reference; the caller matches it against
// the catalog (see ledger.Store.ResolveCategory) before committing.
type ParsedTransaction struct {
	Category    string
	Description string
	Type        model.TransactionType
	Amount      decimal.Decimal
}

// amountPattern pairs a compiled unit pattern with the power-of-ten
// shift its unit implies: 毛/角 are tenths, 分 are hundredths.
type amountPattern struct {
	re    *regexp.Regexp
	shift int32
}

const numberToken = `\d[\d,]*(?:\.\d+)?`

// Parser converts transcript text into a candidate transaction. Safe
// for concurrent use; all state is compiled up front.
type Parser struct {
	amounts       []amountPattern
	categoryRules []categoryRule
}

// NewParser compiles the unit patterns and rule tables.
func NewParser() *Parser {
	// Priority order matters: the first pattern that matches anywhere
	// in the text wins, so the combined 块钱 form must precede bare 块,
	// and the bare number is the final fallback.
	units := []struct {
		suffix string
		shift  int32
	}{
		{"元", 0},
		{"块钱", 0},
		{"块", 0},
		{"毛", -1},
		{"角", -1},
		{"分", -2},
		{"", 0},
	}

	patterns := make([]amountPattern, 0, len(units))
	for _, u := range units {
		patterns = append(patterns, amountPattern{
			re:    regexp.MustCompile("(" + numberToken + ")" + u.suffix),
			shift: u.shift,
		})
	}

	return &Parser{
		amounts:       patterns,
		categoryRules: defaultCategoryRules(),
	}
}

// Parse runs the extraction pipeline over a transcript. The expected
// type is a hint from the caller, used only when no type keyword is
// found in the text. Returns ErrEmptyInput or ErrNoAmount when no
// transaction can be extracted.
func (p *Parser) Parse(text string, expected model.TransactionType) (*ParsedTransaction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	amount, err := p.extractAmount(text)
	if err != nil {
		return nil, err
	}

	result := &ParsedTransaction{
		Amount:      amount,
		Type:        p.inferType(text, expected),
		Category:    p.inferCategory(text),
		Description: p.buildDescription(text),
	}
	if result.Description == "" {
		if result.Category != "" {
			result.Description = result.Category + "消费"
		} else {
			result.Description = "语音记录"
		}
	}

	slog.Debug("parsed voice transcript",
		"amount", result.Amount.String(),
		"type", result.Type,
		"category", result.Category)
	return result, nil
}

// extractAmount tries each unit pattern in priority order and takes the
// first match, then applies the unit's scale.
func (p *Parser) extractAmount(text string) (decimal.Decimal, error) {
	for _, pat := range p.amounts {
		m := pat.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		cleaned := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, ErrNoAmount
		}
		return amount.Shift(pat.shift), nil
	}
	return decimal.Zero, ErrNoAmount
}

// inferType scans for income keywords, then expense keywords, falling
// back to the caller's hint. Income is deliberately checked first:
// "转账收到" must win over the bare expense keyword "转账".
func (p *Parser) inferType(text string, expected model.TransactionType) model.TransactionType {
	lowered := strings.ToLower(text)
	for _, kw := range incomeKeywords {
		if strings.Contains(lowered, kw) {
			return model.TypeIncome
		}
	}
	for _, kw := range expenseKeywords {
		if strings.Contains(lowered, kw) {
			return model.TypeExpense
		}
	}
	return expected
}

// inferCategory returns the category name of the first matching rule,
// or "" when nothing matches. The rule list has a fixed order so the
// result is deterministic.
func (p *Parser) inferCategory(text string) string {
	for _, rule := range p.categoryRules {
		if strings.Contains(text, rule.keyword) {
			return rule.category
		}
	}
	return ""
}

// buildDescription strips every amount-unit occurrence from the text
// and collapses the remaining whitespace. Callers substitute a default
// when fewer than two characters survive.
func (p *Parser) buildDescription(text string) string {
	for _, pat := range p.amounts {
		text = pat.re.ReplaceAllString(text, "")
	}
	text = strings.Join(strings.Fields(text), " ")
	if len([]rune(text)) < 2 {
		return ""
	}
	return text
}
