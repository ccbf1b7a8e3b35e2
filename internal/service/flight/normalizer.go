package flight

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// UpstreamResponse 供應商回傳的原始 JSON。內容不解讀、不改寫，序列化時原樣輸出。
type UpstreamResponse struct {
	raw  json.RawMessage
	data json.RawMessage // 頂層 "data"；缺少時為 nil
}

// ErrMalformedResponse 2xx 但 body 無法解碼
var ErrMalformedResponse = errors.New("aviationstack response is not valid JSON")

// ParseUpstreamResponse body 必須是合法 JSON；頂層不是 object 時視為沒有 data
func ParseUpstreamResponse(body []byte) (*UpstreamResponse, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, ErrMalformedResponse
	}
	resp := &UpstreamResponse{raw: append(json.RawMessage(nil), body...)}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		resp.data = envelope["data"]
	}
	return resp, nil
}

func (r *UpstreamResponse) MarshalJSON() ([]byte, error) {
	if r == nil || len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// Bytes 原始 body（已去除前後空白）
func (r *UpstreamResponse) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.raw
}

// Records data 陣列的每一筆；data 不是陣列時回傳 nil
func (r *UpstreamResponse) Records() []json.RawMessage {
	if r == nil || len(r.data) == 0 {
		return nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(r.data, &records); err != nil {
		return nil
	}
	return records
}

// Empty data 缺少、為 falsy 值（null、false、0、""）或 length 為 0（空陣列、{"length":0}）
func (r *UpstreamResponse) Empty() bool {
	if r == nil {
		return true
	}
	d := bytes.TrimSpace(r.data)
	if len(d) == 0 {
		return true
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return false
	}
	switch data := v.(type) {
	case nil:
		return true
	case bool:
		return !data
	case string:
		return data == ""
	case json.Number:
		return isZero(data)
	case []any:
		return len(data) == 0
	case map[string]any:
		n, ok := data["length"].(json.Number)
		return ok && isZero(n)
	}
	return false
}

func isZero(n json.Number) bool {
	f, err := strconv.ParseFloat(string(n), 64)
	return err == nil && f == 0
}

// Normalize 空結果轉成 NotFound，其餘整包原樣成功回傳
func Normalize(query FlightQuery, resp *UpstreamResponse) Outcome {
	if resp.Empty() {
		return NotFound(query.FlightNumber)
	}
	return Success(resp)
}
