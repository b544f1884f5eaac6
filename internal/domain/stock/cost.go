package stock

import "github.com/shopspring/decimal"

// AverageCost calcula o custo médio ponderado após uma nova compra.
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
// Devolve zero quando a soma das quantidades não é positiva.
func AverageCost(currentQty int64, currentCost decimal.Decimal, addedQty int64, addedCost decimal.Decimal) decimal.Decimal {
	qtyA := decimal.NewFromInt(currentQty)
	qtyB := decimal.NewFromInt(addedQty)
	sum := qtyA.Add(qtyB)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := qtyA.Mul(currentCost).Add(qtyB.Mul(addedCost))
	return num.Div(sum)
}

// Margin deriva lucro por unidade e margem percentual a partir de custo e
// preço de venda. Com custo zero a margem é reportada como zero para evitar
// divisão por zero.
func Margin(cost, price decimal.Decimal) (profit, marginPct decimal.Decimal) {
	profit = price.Sub(cost)
	if cost.GreaterThan(decimal.Zero) {
		marginPct = profit.Div(cost).Mul(decimal.NewFromInt(100))
	} else {
		marginPct = decimal.Zero
	}
	return profit, marginPct
}
