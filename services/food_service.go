package services

import (
	"errors"
	"math"
	"strings"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/repository"
)

type FoodService struct {
	Repo *repository.FoodRepository
}

func NewFoodService(repo *repository.FoodRepository) *FoodService {
	return &FoodService{Repo: repo}
}

type FoodIn struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func ValidateFoodPayload(p *FoodIn) error {
	if p == nil {
		return errors.New("Invalid payload.")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("Name is required.")
	}
	if math.IsNaN(p.Price) || p.Price < 0 {
		return errors.New("Price must be a valid number.")
	}
	return nil
}

func (s *FoodService) List() ([]entity.Food, error) {
	return s.Repo.List()
}

func (s *FoodService) Get(id uint) (*entity.Food, error) {
	return s.Repo.GetByID(id)
}

func (s *FoodService) Create(in *FoodIn) (*entity.Food, error) {
	f := entity.Food{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if f.Category == "" {
		f.Category = "Main course"
	}
	if err := s.Repo.Create(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FoodService) Update(id uint, in *FoodIn) (*entity.Food, error) {
	f, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	f.Name = strings.TrimSpace(in.Name)
	f.Description = strings.TrimSpace(in.Description)
	f.Price = in.Price
	if c := strings.TrimSpace(in.Category); c != "" {
		f.Category = c
	}
	f.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := s.Repo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FoodService) Delete(id uint) (bool, error) {
	return s.Repo.Delete(id)
}
