package handler

import (
	"bytes"
	"encoding/json"

	"flighttracker/internal/core"
	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/pkg/response"
	"flighttracker/internal/service/flight"
	"flighttracker/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	trace   *telemetry.Trace
	tracker flight.Tracker
}

func NewFlightHandler(trace *telemetry.Trace, tracker flight.Tracker) *FlightHandler {
	return &FlightHandler{trace: trace, tracker: tracker}
}

// Track 查詢航班即時狀態
// @Summary 查詢航班
// @Description 以 IATA 航班代碼查詢 Aviation Stack，成功時原樣回傳供應商資料
// @Tags Flight
// @Accept json
// @Produce json
// @Param body body dto.TrackFlightRequestDto true "航班代碼"
// @Success 200 {object} dto.FlightDataResponseDto
// @Failure 400 {object} dto.ErrorResponseDto
// @Failure 404 {object} dto.ErrorResponseDto
// @Failure 429 {object} dto.ErrorResponseDto
// @Failure 500 {object} dto.ErrorResponseDto
// @Router /api/track-flight [post]
func (h *FlightHandler) Track(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)

	input, err := decodeBody(c)
	if err != nil {
		// 無法解析的 body 不屬於欄位驗證錯誤，走通用 500
		appErr := cErr.InternalServer("decode request body: " + err.Error())
		end(appErr)
		response.AbortWithError(c, appErr)
		return
	}

	data, appErr := flight.HTTPResult(h.tracker.Execute(flight.WithEntry(ctx, core.EntryHTTP), input))
	if appErr != nil {
		end(appErr)
		response.AbortWithError(c, appErr)
		return
	}
	end(nil)
	response.Success(c, data)
}

func decodeBody(c *gin.Context) (any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var input any
	if err := dec.Decode(&input); err != nil {
		return nil, err
	}
	return input, nil
}
