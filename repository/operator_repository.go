package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OperatorRepository struct {
	DB *gorm.DB
}

func NewOperatorRepository(db *gorm.DB) *OperatorRepository {
	return &OperatorRepository{DB: db}
}

func (r *OperatorRepository) FindByEmail(email string) (*entity.Operator, error) {
	var op entity.Operator
	if err := r.DB.Where("email = ?", email).First(&op).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) FindByID(id uint) (*entity.Operator, error) {
	var op entity.Operator
	if err := r.DB.First(&op, id).Error; err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Operator{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *OperatorRepository) Create(op *entity.Operator) error {
	return r.DB.Create(op).Error
}
