package store

import "errors"

// ErrNotFound 表示查無指定 ID 的紀錄
var ErrNotFound = errors.New("record not found")
