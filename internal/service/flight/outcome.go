package flight

import (
	"context"
	"errors"
	"fmt"
	"net"

	cErr "flighttracker/internal/pkg/error"
	"flighttracker/internal/pkg/request"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindNotFound
	KindConfigError
	KindUpstreamError
	KindValidationError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNotFound:
		return "not_found"
	case KindConfigError:
		return "config_error"
	case KindUpstreamError:
		return "upstream_error"
	case KindValidationError:
		return "validation_error"
	default:
		return "unknown"
	}
}

// Outcome 一次查詢的結果，只會有一種 Kind；依 Kind 讀取對應欄位
type Outcome struct {
	Kind         Kind
	Response     *UpstreamResponse   // Success
	FlightNumber string              // NotFound
	StatusCode   int                 // UpstreamError
	Violations   []request.Violation // ValidationError
}

func Success(resp *UpstreamResponse) Outcome {
	return Outcome{Kind: KindSuccess, Response: resp}
}

func NotFound(flightNumber string) Outcome {
	return Outcome{Kind: KindNotFound, FlightNumber: flightNumber}
}

func ConfigError() Outcome {
	return Outcome{Kind: KindConfigError}
}

func UpstreamFailure(statusCode int) Outcome {
	return Outcome{Kind: KindUpstreamError, StatusCode: statusCode}
}

func ValidationError(violations []request.Violation) Outcome {
	return Outcome{Kind: KindValidationError, Violations: violations}
}

// HTTPResult 把結果投影成 HTTP 回應：成功回傳 payload，其餘回傳 *cErr.Error。
// err 為非預期錯誤（傳輸失敗、JSON 解析失敗），一律轉為通用 500。
func HTTPResult(o Outcome, err error) (any, *cErr.Error) {
	if err != nil {
		return nil, unexpectedError(err)
	}
	switch o.Kind {
	case KindSuccess:
		return o.Response, nil
	case KindNotFound:
		return nil, cErr.NotFound(NotFoundMessage(o.FlightNumber), cErr.FLIGHT_NOT_FOUND)
	case KindConfigError:
		return nil, cErr.ConfigError(MsgKeyNotConfigured)
	case KindUpstreamError:
		return nil, cErr.ExternalRequestError(fmt.Sprintf("aviationstack responded with status %d", o.StatusCode))
	case KindValidationError:
		return nil, cErr.ValidateErr("flight query validation failed").WithDetails(o.Violations)
	default:
		return nil, cErr.InternalServer(fmt.Sprintf("unhandled outcome %d", o.Kind))
	}
}

// unexpectedError 依失敗類型給不同 error code，對外訊息一律是通用訊息
func unexpectedError(err error) *cErr.Error {
	var netErr net.Error
	switch {
	case errors.Is(err, ErrMalformedResponse):
		return cErr.ExternalResponseFormatError(err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return cErr.GatewayTimeout(err.Error())
	default:
		return cErr.InternalServer(err.Error())
	}
}

// ToolResult 把結果投影成 tool 呼叫：成功回傳 payload，其餘回傳只帶訊息的 error，
// 訊息與 HTTP 回應的 error 欄位相同。
func ToolResult(o Outcome, err error) (any, error) {
	data, appErr := HTTPResult(o, err)
	if appErr != nil {
		return nil, errors.New(appErr.Error())
	}
	return data, nil
}
