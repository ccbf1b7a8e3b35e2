package core

// ProviderName 航班資料供應商
type ProviderName string

const (
	ProviderAviationStack ProviderName = "aviationstack"
)

const (
	AviationStackAPIBaseURL = "https://api.aviationstack.com"
)

type AviationStackEndpoint string

const (
	AviationStackFlightsEndpoint AviationStackEndpoint = "/v1/flights"
)

// 供應商 query 參數名稱
const (
	AviationStackParamAccessKey  = "access_key"
	AviationStackParamFlightIATA = "flight_iata"
)

// ToolName 對外提供給 LLM 編排層的工具名稱
type ToolName string

const (
	ToolTrackFlight ToolName = "track_flight"
)
