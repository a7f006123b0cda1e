package constants

import "github.com/shopspring/decimal"

// StartingBalance is credited to every account at registration.
var StartingBalance = decimal.RequireFromString("100.00")

// MoneyScale is the number of decimal places kept for balances and rewards.
const MoneyScale int32 = 2

// ContextUserIDKey holds the authenticated caller id in the echo context.
const ContextUserIDKey = "user_id"
