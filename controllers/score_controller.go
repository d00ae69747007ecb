package controllers

import (
	"errors"
	"strconv"

	"github.com/Fatima-Benaya/2nConv-ELLW/pkg/resp"
	"github.com/Fatima-Benaya/2nConv-ELLW/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScoreController struct{ Svc *services.ScoreService }

func NewScoreController(svc *services.ScoreService) *ScoreController {
	return &ScoreController{Svc: svc}
}

// POST /api/scores
func (sc *ScoreController) Create(c *gin.Context) {
	var in services.ScoreIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}
	if err := services.ValidateScorePayload(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	score, err := sc.Svc.Create(&in)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, score)
}

// GET /api/scores/top/:level
func (sc *ScoreController) Top(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 2 {
		resp.BadRequest(c, "Invalid level.")
		return
	}
	scores, err := sc.Svc.TopByLevel(level)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, scores)
}

// PUT /api/scores/:id
func (sc *ScoreController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.NotFound(c, "Score not found.")
		return
	}
	var body struct {
		Points *int `json:"points"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Points == nil || *body.Points < 0 {
		resp.BadRequest(c, "Points must be a positive number.")
		return
	}
	score, err := sc.Svc.UpdatePoints(uint(id), *body.Points)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Score not found.")
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, score)
}
