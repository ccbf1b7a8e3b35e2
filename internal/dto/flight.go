package dto

// TrackFlightRequestDto POST /api/track-flight 請求體（僅供文件；實際驗證在 flight.Validate）
type TrackFlightRequestDto struct {
	FlightNumber string `json:"flight_number" example:"AA1234"`
}

// ErrorResponseDto 所有失敗回應
type ErrorResponseDto struct {
	Error   string         `json:"error" example:"No flight data found for flight ZZ0000"`
	Details []ViolationDto `json:"details,omitempty"`
}

type ViolationDto struct {
	Code     string   `json:"code" example:"invalid_type"`
	Expected string   `json:"expected,omitempty" example:"string"`
	Received string   `json:"received,omitempty" example:"undefined"`
	Path     []string `json:"path"`
	Message  string   `json:"message" example:"Required"`
}

// FlightDataResponseDto 供應商原始回應；data 內每筆紀錄原樣轉出
type FlightDataResponseDto struct {
	Pagination map[string]any   `json:"pagination,omitempty"`
	Data       []map[string]any `json:"data"`
}
