// Package endpoint maps a logical operation and API version to a concrete path and the
// name of the market query parameter. All version branching lives here.
package endpoint

import (
	"fmt"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

const (
	marketParamV1 = "market"
	marketParamV2 = "marketname"
)

// Spec is the resolved endpoint for one (operation, version) pair.
type Spec struct {
	Path        string
	MarketParam string
}

type route struct {
	v1Category string // public, market, account; empty if absent from v1.1
	v2Category string // markets, currencies, market, account; empty if absent from v2.0
	v2Name     string
}

// v2.0 只开放公共接口，私有接口只有 v1.1 路径
var routes = map[string]route{
	"getmarkets":         {v1Category: "public", v2Category: "markets", v2Name: "getmarkets"},
	"getcurrencies":      {v1Category: "public", v2Category: "currencies", v2Name: "getcurrencies"},
	"getticker":          {v1Category: "public", v2Category: "market", v2Name: "getlatesttick"},
	"getmarketsummaries": {v1Category: "public", v2Category: "markets", v2Name: "getmarketsummaries"},
	"getmarketsummary":   {v1Category: "public", v2Category: "market", v2Name: "getmarketsummary"},
	"getorderbook":       {v1Category: "public", v2Category: "market", v2Name: "getmarketorderbook"},
	"getmarkethistory":   {v1Category: "public", v2Category: "market", v2Name: "getmarkethistory"},
	"gettickshistory":    {v2Category: "market", v2Name: "getticks"},

	"buylimit":      {v1Category: "market"},
	"selllimit":     {v1Category: "market"},
	"cancel":        {v1Category: "market"},
	"getopenorders": {v1Category: "market"},

	"getbalances":          {v1Category: "account"},
	"getbalance":           {v1Category: "account"},
	"getdepositaddress":    {v1Category: "account"},
	"withdraw":             {v1Category: "account"},
	"getorder":             {v1Category: "account"},
	"getorderhistory":      {v1Category: "account"},
	"getwithdrawalhistory": {v1Category: "account"},
	"getdeposithistory":    {v1Category: "account"},
}

// Resolve returns the path and market parameter name for operation under version.
// Operations defined for only one generation resolve to that generation regardless
// of version, as long as version itself is supported.
func Resolve(operation string, version schema.APIVersion) (Spec, error) {
	if !version.Valid() {
		return Spec{}, fmt.Errorf("%w: %q", schema.ErrUnsupportedVersion, version)
	}
	r, ok := routes[operation]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", schema.ErrUnknownOperation, operation)
	}

	effective := version
	switch {
	case r.v1Category == "" && r.v2Category != "":
		effective = schema.V2_0
	case r.v2Category == "" && version == schema.V2_0:
		return Spec{}, fmt.Errorf("%w: %q is not available in %s", schema.ErrUnknownOperation, operation, version)
	}

	if effective == schema.V2_0 {
		return Spec{
			Path:        "/" + string(schema.V2_0) + "/pub/" + r.v2Category + "/" + r.v2Name,
			MarketParam: marketParamV2,
		}, nil
	}
	return Spec{
		Path:        "/" + string(schema.V1_1) + "/" + r.v1Category + "/" + operation,
		MarketParam: marketParamV1,
	}, nil
}
