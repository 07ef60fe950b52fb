package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/solar-insurance/solar-cli/internal/usecase"
)

// CallRenderer renders read-only call results
type CallRenderer struct {
	out io.Writer
}

// NewCallRenderer creates a new call renderer
func NewCallRenderer(out io.Writer) *CallRenderer {
	return &CallRenderer{out: out}
}

// Render prints the decoded return values. owner gets its own phrasing.
func (r *CallRenderer) Render(result *usecase.CallContractResult) error {
	res := result.Result

	if res.Method == usecase.DefaultReadMethod && len(res.Values) == 1 {
		fmt.Fprintf(r.out, "The contract owner is: %s\n", FormatValue(res.Values[0]))
		return nil
	}

	switch len(res.Values) {
	case 0:
		fmt.Fprintf(r.out, "%s returned no values\n", res.Method)
	case 1:
		fmt.Fprintf(r.out, "%s returned: %s\n", res.Method, FormatValue(res.Values[0]))
	default:
		parts := make([]string, len(res.Values))
		for i, v := range res.Values {
			name := ""
			if i < len(res.Outputs) {
				name = res.Outputs[i].Name
			}
			if name == "" {
				name = fmt.Sprintf("[%d]", i)
			}
			parts[i] = fmt.Sprintf("%s=%s", name, FormatValue(v))
		}
		fmt.Fprintf(r.out, "%s returned: %s\n", res.Method, strings.Join(parts, ", "))
	}
	return nil
}

var _ Renderer[*usecase.CallContractResult] = (*CallRenderer)(nil)
