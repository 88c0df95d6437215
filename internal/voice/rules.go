package voice

// incomeKeywords mark a sentence as income. Checked before the expense
// set, so compound forms like 转账收到 beat the bare 转账.
var incomeKeywords = []string{
	"收入", "赚", "得到", "获得", "工资", "奖金", "红包", "转账收到",
}

// expenseKeywords mark a sentence as expense.
var expenseKeywords = []string{
	"花了", "花费", "花", "买", "支出", "购买", "支付", "付", "消费", "转账",
}

// categoryRule maps a keyword substring to a category display name.
type categoryRule struct {
	keyword  string
	category string
}

// defaultCategoryRules returns the inference table in match priority
// order. The order is part of the contract: multi-character and
// domain-specific keywords come before short generic ones so a sentence
// like 充电花了5块钱 lands on 交通, not on whatever a looser keyword
// would catch first.
func defaultCategoryRules() []categoryRule {
	return []categoryRule{
		{"打车", "交通"},
		{"地铁", "交通"},
		{"公交", "交通"},
		{"充电", "交通"},
		{"加油", "交通"},
		{"外卖", "餐饮"},
		{"奶茶", "餐饮"},
		{"咖啡", "餐饮"},
		{"房租", "居住"},
		{"水费", "居住"},
		{"电费", "居住"},
		{"物业", "居住"},
		{"电影", "娱乐"},
		{"游戏", "娱乐"},
		{"医院", "医疗"},
		{"看病", "医疗"},
		{"药", "医疗"},
		{"衣服", "购物"},
		{"鞋", "购物"},
		{"超市", "购物"},
		{"工资", "工资"},
		{"奖金", "奖金"},
		{"红包", "红包"},
		{"吃", "餐饮"},
		{"饭", "餐饮"},
		{"餐", "餐饮"},
	}
}
