package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount é um decimal que aceita no JSON tanto número quanto string com
// vírgula decimal ("24,00"). Usado nos campos monetários dos requests para
// aplicar a mesma tolerância do Parse na borda HTTP.
type Amount struct {
	decimal.Decimal
}

// NewAmount cria um Amount a partir de um decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// UnmarshalJSON aceita número JSON, string ("3,99" ou "3.99") ou null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.Decimal = Parse(s)
		return nil
	}
	// Parse direto do literal, sem passar por float64: literais decimais
	// longos manteriam só ~15 dígitos de precisão no caminho via float.
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON serializa como número JSON.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
