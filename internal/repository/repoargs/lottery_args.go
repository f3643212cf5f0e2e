package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotteryOverview лотерея вместе со счетчиком участников и именем победителя
// (nil пока победитель не разыгран).
type LotteryOverview struct {
	ID               int64
	CreatedAt        time.Time
	Prize            decimal.Decimal
	Active           bool
	ParticipantCount int64
	WinnerID         *int64
	WinnerName       *string
}
