package repoargs

import "github.com/shopspring/decimal"

type PromotionCreate struct {
	Title       string
	Description string
	Discount    decimal.Decimal
}
