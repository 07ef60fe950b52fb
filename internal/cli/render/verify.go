package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer renders verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render prints the verification outcome and explorer link
func (r *VerifyRenderer) Render(result *models.VerificationResult) error {
	verifier := cases.Title(language.English).String(result.Verifier)
	if result.AlreadyVerified {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s is already verified on %s", result.Contract, verifier)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Verified %s on %s", result.Contract, verifier)))
	}
	fmt.Fprintf(r.out, "  Address: %s\n", result.Address.Hex())
	if result.URL != "" {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.FgCyan).Sprint(result.URL))
	}
	return nil
}

var _ Renderer[*models.VerificationResult] = (*VerifyRenderer)(nil)
