package domain

import (
	"errors"
	"time"
)

type Dish struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Fat         float64   `json:"fat"`
	Carbs       float64   `json:"carbs"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type MenuItem struct {
	ID        int    `json:"id"`
	WeekStart string `json:"week_start"`
	DayOfWeek int    `json:"day_of_week"`
	MealSlot  string `json:"meal_slot"`
	Servings  int    `json:"servings"`
	DishID    int    `json:"dish_id"`
	Dish      *Dish  `json:"dish,omitempty"`
}

type WeeklyMenu struct {
	WeekStart string     `json:"week_start"`
	Items     []MenuItem `json:"items"`
}

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Servings int     `json:"servings"`
}

func (t *NutritionTotals) Add(o NutritionTotals) {
	t.Calories += o.Calories
	t.Protein += o.Protein
	t.Fat += o.Fat
	t.Carbs += o.Carbs
	t.Servings += o.Servings
}

type SlotNutrition struct {
	DayOfWeek int             `json:"day_of_week"`
	MealSlot  string          `json:"meal_slot"`
	Totals    NutritionTotals `json:"totals"`
}

type DayNutrition struct {
	DayOfWeek int             `json:"day_of_week"`
	Totals    NutritionTotals `json:"totals"`
}

type NutritionReport struct {
	WeekStart string          `json:"week_start"`
	Slots     []SlotNutrition `json:"slots"`
	Days      []DayNutrition  `json:"days"`
	Week      NutritionTotals `json:"week"`
}

var ErrNotFound = errors.New("not found")
