package repository

import (
	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"gorm.io/gorm"
)

type ScoreRepository struct{ DB *gorm.DB }

func NewScoreRepository(db *gorm.DB) *ScoreRepository { return &ScoreRepository{DB: db} }

func (r *ScoreRepository) Create(s *entity.Score) error {
	return r.DB.Create(s).Error
}

// TopByLevel returns the best scores for one grid size, highest first.
func (r *ScoreRepository) TopByLevel(level, limit int) ([]entity.Score, error) {
	var scores []entity.Score
	err := r.DB.Where("level = ?", level).
		Order("points DESC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (r *ScoreRepository) GetByID(id uint) (*entity.Score, error) {
	var s entity.Score
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScoreRepository) Update(s *entity.Score) error {
	return r.DB.Save(s).Error
}
