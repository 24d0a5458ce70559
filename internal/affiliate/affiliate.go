package affiliate

import "regexp"

// Params is the query string appended to Expedia booking links.
const Params = "clickref=1110l15dQSW&camref=1110l15dQSW"

// bookingURLRe matches bookingUrl fields pointing at www.expedia.com which do
// not carry a query string yet. The URL itself is captured in group 1.
var bookingURLRe = regexp.MustCompile(`"bookingUrl": "(https://www\.expedia\.com/[^"?]+)"`)

// Patch returns source with Params appended to every matching bookingUrl.
// Everything else is returned unmodified.
func Patch(source []byte) []byte {
	return bookingURLRe.ReplaceAll(source, []byte(`"bookingUrl": "${1}?`+Params+`"`))
}
