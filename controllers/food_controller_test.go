package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
)

func TestFoodCRUD(t *testing.T) {
	r := setupRouter(t)

	// create
	w := doJSON(t, r, http.MethodPost, "/api/foods",
		`{"name": "Pizza Margarita", "description": "Tomate y mozzarella", "price": 9.8, "category": "Main course"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: code = %d, body = %s", w.Code, w.Body.String())
	}
	var food entity.Food
	json.Unmarshal(w.Body.Bytes(), &food)
	if food.ID == 0 {
		t.Fatal("expected assigned id")
	}

	// read
	path := fmt.Sprintf("/api/foods/%d", food.ID)
	if w := doJSON(t, r, http.MethodGet, path, ""); w.Code != http.StatusOK {
		t.Fatalf("detail: code = %d", w.Code)
	}

	// update
	w = doJSON(t, r, http.MethodPut, path, `{"name": "Pizza Cuatro Quesos", "price": 11.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: code = %d, body = %s", w.Code, w.Body.String())
	}
	var updated entity.Food
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Name != "Pizza Cuatro Quesos" || updated.Price != 11.5 {
		t.Fatalf("update not applied: %+v", updated)
	}

	// list
	w = doJSON(t, r, http.MethodGet, "/api/foods", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: code = %d", w.Code)
	}
	var foods []entity.Food
	json.Unmarshal(w.Body.Bytes(), &foods)
	if len(foods) != 1 {
		t.Fatalf("list len = %d, want 1", len(foods))
	}

	// delete, then 404
	if w := doJSON(t, r, http.MethodDelete, path, ""); w.Code != http.StatusOK {
		t.Fatalf("delete: code = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
		t.Fatalf("detail after delete: code = %d, want 404", w.Code)
	}
	if w := doJSON(t, r, http.MethodDelete, path, ""); w.Code != http.StatusNotFound {
		t.Fatalf("double delete: code = %d, want 404", w.Code)
	}
}

func TestFoodValidation(t *testing.T) {
	r := setupRouter(t)

	if w := doJSON(t, r, http.MethodPost, "/api/foods", `{"name": "", "price": 3}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty name: code = %d, want 400", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/api/foods", `{"name": "Tapa", "price": -1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("negative price: code = %d, want 400", w.Code)
	}
}
