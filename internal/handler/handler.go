package handler

import (
	"strconv"

	"doable-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径参数中的数字ID
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, utils.WrapError(utils.ErrInvalidRequest, "ID格式无效")
	}
	return uint(id), nil
}

// bindPatch 绑定稀疏补丁请求体
// 只保留请求中出现的键,缺失与显式null在这里就已区分开
func bindPatch(c *gin.Context) (map[string]interface{}, error) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		return nil, utils.WrapError(utils.ErrInvalidRequest, "请求体格式错误")
	}
	return patch, nil
}
