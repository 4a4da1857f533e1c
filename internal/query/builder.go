// Package query renders ordered parameters into the canonical query string that is
// both sent and signed.
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

// Build appends params to endpoint as a query string, keeping their order.
// With no params endpoint is returned unchanged.
func Build(endpoint string, params []schema.Param) string {
	if len(params) == 0 {
		return endpoint
	}

	var sb strings.Builder
	sb.Grow(len(endpoint) + 16*len(params))
	sb.WriteString(endpoint)
	sb.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(Stringify(p.Value)))
	}
	return sb.String()
}

// Stringify renders a parameter value. Numbers are always plain decimals, never
// exponent notation, and render identically on every call.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.String()
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		return x.String()
	case float64:
		return decimal.NewFromFloat(x).String()
	case float32:
		return decimal.NewFromFloat32(x).String()
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	}

	// 自定义数值类型（如 type Rate float64）按底层类型输出
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return decimal.NewFromFloat32(float32(rv.Float())).String()
	case reflect.Float64:
		return decimal.NewFromFloat(rv.Float()).String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	}

	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
