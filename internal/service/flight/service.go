package flight

import (
	"context"
	"fmt"
)

const MsgKeyNotConfigured = "Aviation Stack API key not configured"

// NotFoundMessage 查無航班時對外的訊息
func NotFoundMessage(flightNumber string) string {
	return fmt.Sprintf("No flight data found for flight %s", flightNumber)
}

// FlightQuery 通過驗證的查詢；FlightNumber 可能是空字串，交由供應商回空結果
type FlightQuery struct {
	FlightNumber string
}

// Lookup 航班資料供應商
type Lookup interface {
	Flights(ctx context.Context, credential, flightNumber string) (*UpstreamResponse, error)
}

// Tracker 兩個入口（HTTP / tool）共用的執行流程
type Tracker interface {
	Execute(ctx context.Context, input any) (Outcome, error)
}
