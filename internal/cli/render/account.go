package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/solar-insurance/solar-cli/internal/domain/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountRenderer renders the signer account
type AccountRenderer struct {
	out io.Writer
}

// NewAccountRenderer creates a new account renderer
func NewAccountRenderer(out io.Writer) *AccountRenderer {
	return &AccountRenderer{out: out}
}

// Render prints address and balance in ether and wei
func (r *AccountRenderer) Render(account *models.Account) error {
	fmt.Fprintf(r.out, "Address: %s\n", account.Address.Hex())
	if account.Network != "" {
		fmt.Fprintf(r.out, "Network: %s (chain %d)\n", cases.Title(language.English).String(account.Network), account.ChainID)
	}
	fmt.Fprintf(r.out, "Balance: %s ETH (%s wei)\n", FormatEther(account.Balance), account.Balance.String())
	return nil
}

// FormatEther converts wei to a decimal ether string with trailing zeros trimmed
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	ether := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether))
	s := ether.FloatString(18)
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

var _ Renderer[*models.Account] = (*AccountRenderer)(nil)
