package probe

import (
	"fmt"
	"io"
)

// Markers match the upstream connectivity test output.
const (
	successMarker = "✅ Gemini API test successful!"
	failureMarker = "❌ Gemini API test failed!"
)

// Report writes the human-readable outcome. The prompt is echoed verbatim
// on success so the output can be checked against the request.
func (r Result) Report(w io.Writer) {
	if r.OK {
		fmt.Fprintln(w, successMarker)
		fmt.Fprintf(w, "🔹 Prompt: %s\n", r.Prompt)
		fmt.Fprintf(w, "\n🔸 Model response:\n%s\n", r.Response)
		return
	}
	fmt.Fprintln(w, failureMarker)
	fmt.Fprintf(w, "Error: %s\n", r.Err)
}
