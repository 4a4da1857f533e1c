package bittrex

// paramSpec describes one operation argument in the order it is sent.
type paramSpec struct {
	name     string
	market   bool // renamed to the version's market parameter
	optional bool // omitted when empty
}

type operation struct {
	private bool
	params  []paramSpec
}

var (
	marketArg         = paramSpec{name: "market", market: true}
	optionalMarketArg = paramSpec{name: "market", market: true, optional: true}
	currencyArg       = paramSpec{name: "currency"}
	optionalCurrency  = paramSpec{name: "currency", optional: true}
	uuidArg           = paramSpec{name: "uuid"}
)

// operations 公共/私有接口及其参数顺序，参数顺序即签名顺序
var operations = map[string]operation{
	"getmarkets":         {},
	"getcurrencies":      {},
	"getticker":          {params: []paramSpec{marketArg}},
	"getmarketsummaries": {},
	"getmarketsummary":   {params: []paramSpec{marketArg}},
	"getorderbook":       {params: []paramSpec{marketArg, {name: "type"}}},
	"getmarkethistory":   {params: []paramSpec{marketArg}},
	"gettickshistory":    {params: []paramSpec{marketArg, {name: "tickInterval"}}},

	"buylimit":      {private: true, params: []paramSpec{marketArg, {name: "quantity"}, {name: "rate"}}},
	"selllimit":     {private: true, params: []paramSpec{marketArg, {name: "quantity"}, {name: "rate"}}},
	"cancel":        {private: true, params: []paramSpec{uuidArg}},
	"getopenorders": {private: true, params: []paramSpec{optionalMarketArg}},

	"getbalances":          {private: true},
	"getbalance":           {private: true, params: []paramSpec{currencyArg}},
	"getdepositaddress":    {private: true, params: []paramSpec{currencyArg}},
	"withdraw":             {private: true, params: []paramSpec{currencyArg, {name: "quantity"}, {name: "address"}, {name: "paymentid", optional: true}}},
	"getorder":             {private: true, params: []paramSpec{uuidArg}},
	"getorderhistory":      {private: true, params: []paramSpec{optionalMarketArg}},
	"getwithdrawalhistory": {private: true, params: []paramSpec{optionalCurrency}},
	"getdeposithistory":    {private: true, params: []paramSpec{optionalCurrency}},
}

// IsPrivate reports whether name needs credentials. Unknown names report false.
func IsPrivate(name string) bool {
	return operations[name].private
}

// Operations lists every supported operation name.
func Operations() []string {
	out := make([]string, 0, len(operations))
	for name := range operations {
		out = append(out, name)
	}
	return out
}

// ArgNames lists the argument names of an operation in send order.
func ArgNames(name string) []string {
	op, ok := operations[name]
	if !ok {
		return nil
	}
	out := make([]string, len(op.params))
	for i, p := range op.params {
		out[i] = p.name
	}
	return out
}
