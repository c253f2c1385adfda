package model

import "time"

// TradingSunday marks one Sunday as enabled (or explicitly disabled) for
// commerce. Only active Sundays within the scheduled month count as
// workable, and only when organization_settings.enable_trading_sundays
// is also set.
type TradingSunday struct {
	Date   time.Time
	Active bool
}
