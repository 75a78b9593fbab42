package service

import (
	"doable-go/internal/dto"
	"doable-go/internal/models"
	"doable-go/internal/repository"
)

// RecordService 通用记录服务
type RecordService struct {
	recordRepo *repository.RecordRepository
}

// NewRecordService 创建通用记录服务
func NewRecordService(recordRepo *repository.RecordRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

// Create 创建记录,插入后带联表回读返回
func (s *RecordService) Create(req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	record := &models.Record{
		Name:   req.Name,
		Data:   jsonOrEmpty(req.Data),
		UserID: req.UserID,
	}
	if req.Status != nil {
		record.Status = *req.Status
	}

	if err := s.recordRepo.Create(record); err != nil {
		return nil, err
	}

	fresh, err := s.recordRepo.GetByID(record.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewRecordResponse(fresh)
	return &resp, nil
}

// List 记录列表
func (s *RecordService) List() ([]dto.RecordResponse, error) {
	records, err := s.recordRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, dto.NewRecordResponse(&records[i]))
	}
	return responses, nil
}

// Update 部分更新记录
func (s *RecordService) Update(id uint, patch map[string]interface{}) (*dto.RecordResponse, error) {
	record, err := s.recordRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	resp := dto.NewRecordResponse(record)
	return &resp, nil
}
