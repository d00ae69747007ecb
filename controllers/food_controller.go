package controllers

import (
	"errors"
	"strconv"

	"github.com/Fatima-Benaya/2nConv-ELLW/pkg/resp"
	"github.com/Fatima-Benaya/2nConv-ELLW/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct{ Svc *services.FoodService }

func NewFoodController(svc *services.FoodService) *FoodController { return &FoodController{Svc: svc} }

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// GET /api/foods
func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.Svc.List()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, foods)
}

// GET /api/foods/:id
func (fc *FoodController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c, "Dish not found.")
		return
	}
	food, err := fc.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Dish not found.")
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, food)
}

// POST /api/foods
func (fc *FoodController) Create(c *gin.Context) {
	var in services.FoodIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}
	if err := services.ValidateFoodPayload(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := fc.Svc.Create(&in)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, food)
}

// PUT /api/foods/:id
func (fc *FoodController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c, "Dish not found.")
		return
	}
	var in services.FoodIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}
	if err := services.ValidateFoodPayload(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := fc.Svc.Update(id, &in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Dish not found.")
			return
		}
		resp.ServerError(c)
		return
	}
	resp.OK(c, food)
}

// DELETE /api/foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		resp.NotFound(c, "Dish not found.")
		return
	}
	deleted, err := fc.Svc.Delete(id)
	if err != nil {
		resp.ServerError(c)
		return
	}
	if !deleted {
		resp.NotFound(c, "Dish not found.")
		return
	}
	resp.OK(c, gin.H{"message": "Dish deleted."})
}
