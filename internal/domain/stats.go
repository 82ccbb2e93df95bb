package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats resume o histórico de vendas. Os valores monetários são numéricos;
// a formatação em moeda fica com a camada HTTP.
type Stats struct {
	TotalCount    int             `json:"total_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	TopProduct    string          `json:"top_product"`
	TopSeller     string          `json:"top_seller"`
	TopLocation   string          `json:"top_location"`
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
}
