package domain

type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusApproved PurchaseStatus = "approved"
	PurchaseStatusRejected PurchaseStatus = "rejected"
)

// Ключи глобальных настроек. Других ключей в таблице settings не бывает.
const (
	SettingCurrentPrice = "current_price"
	SettingCommission   = "commission"
)
