package repository

import (
	"encoding/json"
	"time"

	"doable-go/internal/models"
	"doable-go/internal/utils"
)

// patchField 稀疏补丁中一个可更新字段的落库方式: 目标列名加取值变换
type patchField struct {
	column    string
	transform func(interface{}) (interface{}, error)
}

// asIs 标量字段原样绑定,空字符串和0都是合法更新值
func asIs(v interface{}) (interface{}, error) {
	return v, nil
}

// asInt 整数列,JSON解码出的数字是float64
func asInt(v interface{}) (interface{}, error) {
	if n, ok := v.(float64); ok {
		return int64(n), nil
	}
	return v, nil
}

// asJSON JSON附属列: 独立序列化后整列替换,不与旧值做深合并
func asJSON(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "字段无法序列化为JSON")
	}
	return models.JSONValue(raw), nil
}

// asPassword 密码字段在绑定前哈希,与创建时一致
func asPassword(v interface{}) (interface{}, error) {
	plain, ok := v.(string)
	if !ok {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "密码必须是字符串")
	}
	hashed, err := utils.HashPassword(plain)
	if err != nil {
		return nil, err
	}
	return hashed, nil
}

// asTime 时间戳列,接受RFC3339或日期字符串,null表示清空
func asTime(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "时间字段必须是字符串")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return nil, utils.WrapError(utils.ErrInvalidRequest, "无法解析的时间格式: %s", s)
}

// BuildUpdates 由稀疏补丁构造列到绑定值的更新集合
// 只处理补丁中出现的键;白名单之外的键直接拒绝而不是静默忽略;
// 结果为空时报错,调用方不得发出空更新;无论如何都追加updated_at时间戳
func BuildUpdates(patch map[string]interface{}, fields map[string]patchField) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(patch)+1)
	for key, value := range patch {
		field, ok := fields[key]
		if !ok {
			return nil, utils.WrapError(utils.ErrInvalidRequest, "未知字段: %s", key)
		}
		bound, err := field.transform(value)
		if err != nil {
			return nil, err
		}
		updates[field.column] = bound
	}

	if len(updates) == 0 {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "没有可更新的字段")
	}

	updates["updated_at"] = time.Now()
	return updates, nil
}
