package repoargs

import "github.com/shopspring/decimal"

// UserWithBalance строка админского списка юзеров. Баланс равен нулю,
// если строки в user_balances еще нет.
type UserWithBalance struct {
	ID            int64
	Username      string
	CryptoBalance decimal.Decimal
}
