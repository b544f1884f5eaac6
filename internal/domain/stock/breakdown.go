package stock

// Breakdown converte o estoque em unidades para a exibição fardos + soltas.
// Com caseSize inválido (≤ 0) tudo é reportado como unidade solta.
func Breakdown(stockUnits, caseSize int64) (cases, loose int64) {
	if caseSize <= 0 {
		return 0, stockUnits
	}
	return stockUnits / caseSize, stockUnits % caseSize
}
