// Package stock reúne os serviços de domínio puros do estoque: derivação de
// chave do produto, custo médio ponderado, margem e conversão fardo/unidade.
package stock

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adegacloud/adega-api/internal/domain/entity"
)

// Sufixos que distinguem variantes de embalagem do mesmo nome de bebida.
// Convenção de identidade do produto, não um detalhe de formatação: a mesma
// cerveja em lata e em long neck são duas entradas distintas no estoque.
const (
	suffixLongNeck = " (LN)"
	suffixOther    = " (EXTRA)"
)

// DeriveKey normaliza o nome digitado e aplica o sufixo da embalagem,
// produzindo a chave exata de busca e mesclagem no estoque.
func DeriveKey(name string, packaging entity.Packaging) string {
	// cases.Caser guarda estado; uma instância por chamada evita corrida
	// entre requisições concorrentes.
	caser := cases.Title(language.BrazilianPortuguese)
	key := caser.String(strings.ToLower(strings.TrimSpace(name)))
	switch packaging {
	case entity.PackagingLongNeck:
		key += suffixLongNeck
	case entity.PackagingOther:
		key += suffixOther
	}
	return key
}
