// Package money normaliza valores monetários digitados pelo usuário.
//
// Na interface original os preços chegam como texto livre, quase sempre com
// vírgula como separador decimal ("3,99"). O parser é tolerante: entrada
// vazia ou inválida vira zero em vez de erro, para o fluxo de cadastro não
// travar por causa de um campo mal digitado.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converte um valor de formulário em decimal.
//   - nil ou string vazia -> 0
//   - numérico (int, float, decimal) -> o próprio valor
//   - string -> primeira vírgula vira ponto e faz o parse
//   - qualquer falha de parse -> 0
func Parse(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case string:
		return parseString(n)
	default:
		return decimal.Zero
	}
}

func parseString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
