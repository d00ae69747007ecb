package repository

import (
	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

// List returns every order, newest first, items included.
func (r *OrderRepository) List() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}
