package request

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation 單一欄位驗證錯誤；欄位形狀沿用前端既有的 issue 格式（code/expected/received/path/message）
type Violation struct {
	Code     string   `json:"code"`
	Expected string   `json:"expected,omitempty"`
	Received string   `json:"received,omitempty"`
	Path     []string `json:"path"`
	Message  string   `json:"message"`
}

const (
	CodeInvalidType = "invalid_type"
	CodeCustom      = "custom"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 以 json tag 當欄位名，錯誤路徑才會和請求 body 一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BindRecord 同 Bind，但先確認 input 是 JSON object；否則回報根路徑的型別錯誤
func BindRecord(input any, dst any) []Violation {
	record, ok := input.(map[string]any)
	if !ok {
		received := Kind(input)
		return []Violation{{
			Code:     CodeInvalidType,
			Expected: "object",
			Received: received,
			Path:     []string{},
			Message:  "Expected object, received " + received,
		}}
	}
	return Bind(record, dst)
}

// Bind 將未定型的 record 綁定到 dst（struct 指標），並跑 `validate` tag 規則。
// 型別不符與規則失敗都轉成 Violation；回傳 nil 代表通過。
func Bind(input map[string]any, dst any) []Violation {
	raw, err := json.Marshal(input)
	if err != nil {
		return []Violation{{Code: CodeCustom, Path: []string{}, Message: "Invalid input"}}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return []Violation{typeViolation(typeErr)}
		}
		return []Violation{{Code: CodeCustom, Path: []string{}, Message: err.Error()}}
	}
	if err := validate.Struct(dst); err != nil {
		return GetViolations(input, err)
	}
	return nil
}

// GetViolations 把 validator 的錯誤轉成 Violation 列表
func GetViolations(input map[string]any, err error) []Violation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Code: CodeCustom, Path: []string{}, Message: "Parameter error"}}
	}

	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		v := Violation{
			Code:    CodeCustom,
			Path:    []string{field},
			Message: fe.Error(),
		}
		if fe.Tag() == "required" {
			v.Code = CodeInvalidType
			v.Expected = typeName(fe.Type())
			v.Received = describe(input, field)
			v.Message = "Required"
			if v.Received != "undefined" {
				v.Message = "Expected " + v.Expected + ", received " + v.Received
			}
		}
		out = append(out, v)
	}
	return out
}

func typeViolation(e *json.UnmarshalTypeError) Violation {
	path := []string{}
	if e.Field != "" {
		path = strings.Split(e.Field, ".")
	}
	expected := typeName(e.Type)
	received := e.Value
	if received == "bool" {
		received = "boolean"
	}
	return Violation{
		Code:     CodeInvalidType,
		Expected: expected,
		Received: received,
		Path:     path,
		Message:  "Expected " + expected + ", received " + received,
	}
}

func describe(input map[string]any, field string) string {
	v, ok := input[field]
	if !ok {
		return "undefined"
	}
	return Kind(v)
}

// Kind 以 JSON 的型別名稱描述一個已解碼的值
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return reflect.TypeOf(v).Kind().String()
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch k := t.Kind(); k {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return k.String()
	}
}
