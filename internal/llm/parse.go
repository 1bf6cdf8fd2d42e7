package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hunggoodkidz/data-extraction-module/internal/common"
)

// maxExcerpt bounds the diagnostic excerpt attached to parse failures.
const maxExcerpt = 300

// reFence matches code-fence markers line by line, so unpaired fences are
// stripped just as well as paired ones.
var reFence = regexp.MustCompile("(?m)^```[a-zA-Z]*|```$")

// DecodeObject recovers the single structured object embedded in noisy
// model output. The object may be wrapped in markdown fences and may be
// preceded or followed by commentary; the span from the first '{' to the
// LAST '}' is taken, since trailing prose can contain no closing brace of
// its own while nested objects always end before the outer one.
//
// Failure modes are distinct: no brace pair at all returns
// common.ErrNoObject; a found-but-unparseable span returns
// common.ErrMalformedResponse with a bounded excerpt. Failures are never
// swallowed.
func DecodeObject(raw string) (map[string]any, error) {
	cleaned := strings.TrimSpace(reFence.ReplaceAllString(strings.TrimSpace(raw), ""))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < 0 || end < start {
		return nil, common.NewAppError("NO_JSON_OBJECT",
			"response contains no {...} span", common.ErrNoObject)
	}

	span := cleaned[start : end+1]
	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		return nil, common.NewAppError("MALFORMED_JSON",
			"parse failed for span: "+Excerpt(span, maxExcerpt),
			common.ErrMalformedResponse)
	}
	return obj, nil
}

// Excerpt caps a diagnostic string at n bytes.
func Excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
