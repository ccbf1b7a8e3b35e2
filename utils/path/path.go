package path

import (
	"path/filepath"
	"runtime"
)

// RootPath 專案根目錄（相對設定檔路徑以此為基準）
func RootPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot resolve caller for root path")
	}
	// utils/path/path.go → 專案根目錄
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}
