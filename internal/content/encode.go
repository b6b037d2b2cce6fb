package content

import (
	"fmt"
	"net/url"
)

// EncodeNestedQuery flattens nested maps and slices into PHP-style query
// parameters, the convention the content API expects:
//
//	filter[simple][date]=2017-06-01T00:00:00.000Z
//	filter[simple][enabled]=true
//
// url.Values sorts keys, so the encoding is deterministic.
func EncodeNestedQuery(params map[string]any) string {
	values := url.Values{}

	var flatten func(key string, value any)

	flatten = func(key string, value any) {
		switch typed := value.(type) {
		case map[string]any:
			for childKey, child := range typed {
				flatten(key+"["+childKey+"]", child)
			}
		case []any:
			for i, child := range typed {
				flatten(fmt.Sprintf("%s[%d]", key, i), child)
			}
		default:
			values.Set(key, fmt.Sprint(typed))
		}
	}

	for key, value := range params {
		flatten(key, value)
	}

	return values.Encode()
}
