package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/repository"
)

// Leaderboard of the mini-game. Levels start at a 2x2 grid.
const topScoresLimit = 5

type ScoreService struct {
	Repo *repository.ScoreRepository
}

func NewScoreService(repo *repository.ScoreRepository) *ScoreService {
	return &ScoreService{Repo: repo}
}

type ScoreIn struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
	PlayedAt string `json:"playedAt"`
}

func ValidateScorePayload(p *ScoreIn) error {
	if p == nil {
		return errors.New("Invalid payload.")
	}
	if len(strings.TrimSpace(p.Username)) < 2 {
		return errors.New("Username must be at least 2 characters.")
	}
	if p.Points < 0 {
		return errors.New("Points must be a positive number.")
	}
	if p.Level < 2 {
		return errors.New("Level must be at least 2.")
	}
	return nil
}

func (s *ScoreService) Create(in *ScoreIn) (*entity.Score, error) {
	playedAt := time.Now()
	if in.PlayedAt != "" {
		if t, err := time.Parse(time.RFC3339, in.PlayedAt); err == nil {
			playedAt = t
		}
	}
	score := entity.Score{
		Username: strings.TrimSpace(in.Username),
		Points:   in.Points,
		Level:    in.Level,
		PlayedAt: playedAt,
	}
	if err := s.Repo.Create(&score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (s *ScoreService) TopByLevel(level int) ([]entity.Score, error) {
	return s.Repo.TopByLevel(level, topScoresLimit)
}

// UpdatePoints overwrites an entry's points and refreshes its play time.
func (s *ScoreService) UpdatePoints(id uint, points int) (*entity.Score, error) {
	score, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	score.Points = points
	score.PlayedAt = time.Now()
	if err := s.Repo.Update(score); err != nil {
		return nil, err
	}
	return score, nil
}
