package models

import (
	"database/sql/driver"
	"fmt"
)

// JSONValue 自定义JSON列类型
// 列中保存序列化后的JSON文本,对象、数组、标量都可以原样往返,
// 空值在入库和序列化时统一呈现为空对象{}
type JSONValue []byte

// Scan 实现sql.Scanner接口
func (j *JSONValue) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*j = buf
	case string:
		*j = JSONValue(v)
	default:
		return fmt.Errorf("无法把 %T 扫描为JSONValue", value)
	}
	return nil
}

// Value 实现driver.Valuer接口
func (j JSONValue) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "{}", nil
	}
	return string(j), nil
}

// MarshalJSON 实现json.Marshaler接口
func (j JSONValue) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return j, nil
}

// UnmarshalJSON 实现json.Unmarshaler接口
func (j *JSONValue) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}
