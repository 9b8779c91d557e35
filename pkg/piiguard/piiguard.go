// Package piiguard keeps binary payloads and personal data out of
// exports, logs, and error messages.
package piiguard

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel replaces any value stripped during sanitization.
const Sentinel = "[binary content removed]"

// PIIFieldNames are field names that must never appear in log output or
// unredacted error messages.
var PIIFieldNames = []string{
	"full_name", "first_name", "last_name", "name",
	"email", "email_address",
	"phone", "phone_number",
	"ssn", "social_security",
	"address", "street_address", "mailing_address",
	"date_of_birth", "dob",
	"drivers_license", "license_number",
	"account_number", "policy_number",
}

// base64Pattern matches strings shaped like base64-encoded blobs:
// at least ten 4-char groups plus optional padding.
var base64Pattern = regexp.MustCompile(
	`^(?:[A-Za-z0-9+/]{4}){10,}(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`,
)

var pdfHeader = []byte("%PDF-")

// ContainsPIIFieldName checks whether a string references a known PII
// field name.
func ContainsPIIFieldName(text string) bool {
	lower := strings.ToLower(text)
	for _, name := range PIIFieldNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

// IsBase64Binary checks whether a string appears to be base64-encoded
// binary data. Short strings and ordinary prose are never flagged.
func IsBase64Binary(value string) bool {
	stripped := strings.TrimSpace(value)
	if len(stripped) < 40 {
		return false
	}
	if !base64Pattern.MatchString(stripped) {
		return false
	}

	// Decode a prefix only; enough to spot a PDF header or high-entropy bytes.
	prefix := stripped
	if len(prefix) > 100 {
		prefix = prefix[:100]
	}
	decoded, err := base64.StdEncoding.DecodeString(prefix)
	if err != nil || len(decoded) == 0 {
		return false
	}
	if strings.HasPrefix(string(decoded), string(pdfHeader)) {
		return true
	}

	nonText := 0
	for _, b := range decoded {
		if b > 127 || (b < 32 && b != '\t' && b != '\n' && b != '\r') {
			nonText++
		}
	}
	return nonText > len(decoded)*3/10
}

// ContainsRawPDFBytes checks whether a value carries raw PDF content.
func ContainsRawPDFBytes(value any) bool {
	switch v := value.(type) {
	case []byte:
		return strings.Contains(string(v), string(pdfHeader))
	case string:
		return strings.Contains(v, string(pdfHeader))
	}
	return false
}

// Sanitize returns a copy of data safe for export. Base64 binary
// strings, raw byte slices, and values carrying PDF bytes are replaced
// with the sentinel; nested maps and lists are walked recursively. The
// input is never mutated.
func Sanitize(data map[string]any) map[string]any {
	clean := make(map[string]any, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case map[string]any:
			clean[key] = Sanitize(v)
		case []any:
			clean[key] = sanitizeList(v)
		case []map[string]any:
			items := make([]any, 0, len(v))
			for _, item := range v {
				items = append(items, Sanitize(item))
			}
			clean[key] = items
		case string:
			if IsBase64Binary(v) || ContainsRawPDFBytes(v) {
				clean[key] = Sentinel
			} else {
				clean[key] = v
			}
		case []byte:
			clean[key] = Sentinel
		default:
			clean[key] = value
		}
	}
	return clean
}

func sanitizeList(list []any) []any {
	clean := make([]any, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			clean = append(clean, Sanitize(v))
		case []any:
			clean = append(clean, sanitizeList(v))
		case string:
			// Flagged strings are dropped from lists entirely.
			if !IsBase64Binary(v) && !ContainsRawPDFBytes(v) {
				clean = append(clean, v)
			}
		case []byte:
			// Raw bytes never survive.
		default:
			clean = append(clean, item)
		}
	}
	return clean
}

// Validate walks a record without modifying it and returns one
// violation per unsafe value, as "dotted.path[index]: reason". An empty
// result means the record is safe for distribution.
func Validate(data map[string]any) []string {
	var violations []string
	checkMap(data, "", &violations)
	return violations
}

func checkMap(data map[string]any, path string, violations *[]string) {
	for key, value := range data {
		current := key
		if path != "" {
			current = path + "." + key
		}
		checkValue(value, current, violations)
	}
}

func checkValue(value any, path string, violations *[]string) {
	switch v := value.(type) {
	case string:
		if IsBase64Binary(v) {
			*violations = append(*violations, path+": contains base64 binary data")
		}
		if ContainsRawPDFBytes(v) {
			*violations = append(*violations, path+": contains raw PDF bytes")
		}
	case []byte:
		*violations = append(*violations, path+": contains raw bytes")
	case map[string]any:
		checkMap(v, path, violations)
	case []any:
		for i, item := range v {
			checkValue(item, fmt.Sprintf("%s[%d]", path, i), violations)
		}
	case []map[string]any:
		for i, item := range v {
			checkMap(item, fmt.Sprintf("%s[%d]", path, i), violations)
		}
	}
}
