package domkit

import "github.com/bytedance/sonic"

// ParseJSON decodes a JSON object. Malformed input yields an empty
// object rather than an error; the network and storage helpers rely
// on this fallback, and it is intentional, not incidental.
func ParseJSON(s string) map[string]interface{} {
	var v map[string]interface{}
	if err := sonic.UnmarshalString(s, &v); err != nil || v == nil {
		return map[string]interface{}{}
	}
	return v
}

// Stringify encodes a value as JSON. A value that cannot be encoded
// yields an empty string.
func Stringify(v interface{}) string {
	s, err := sonic.MarshalString(v)
	if err != nil {
		return ""
	}
	return s
}
