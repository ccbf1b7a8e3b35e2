package flight

import (
	"flighttracker/internal/pkg/request"
)

// trackFlightRequest 指標型別讓「缺欄位」與「空字串」可區分；空字串視為合法
type trackFlightRequest struct {
	FlightNumber *string `json:"flight_number" validate:"required"`
}

// Validate 從未定型的輸入取出 flight_number；缺少或非字串時回傳欄位錯誤列表
func Validate(input any) (FlightQuery, []request.Violation) {
	var req trackFlightRequest
	if violations := request.BindRecord(input, &req); len(violations) > 0 {
		return FlightQuery{}, violations
	}
	return FlightQuery{FlightNumber: *req.FlightNumber}, nil
}
