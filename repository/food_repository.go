package repository

import (
	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

func (r *FoodRepository) List() ([]entity.Food, error) {
	var foods []entity.Food
	err := r.DB.Order("created_at DESC").Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) GetByID(id uint) (*entity.Food, error) {
	var f entity.Food
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) Create(f *entity.Food) error {
	return r.DB.Create(f).Error
}

func (r *FoodRepository) Update(f *entity.Food) error {
	return r.DB.Save(f).Error
}

func (r *FoodRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Food{}, id)
	return res.RowsAffected > 0, res.Error
}
