package dto

// DeleteResponse 删除成功响应
type DeleteResponse struct {
	Success bool `json:"success"`
}

// UploadResponse 上传成功响应
type UploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
