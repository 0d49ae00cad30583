package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"carehome/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (name, description, calories, protein, fat, carbs, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		dish.Name, dish.Description, dish.Calories, dish.Protein, dish.Fat, dish.Carbs, dish.ImageURL).
		Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) ListDishes() ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), calories, protein, fat, carbs, COALESCE(image_url, ''), created_at
		FROM dishes
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Calories, &dish.Protein,
			&dish.Fat, &dish.Carbs, &dish.ImageURL, &dish.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) GetDish(id int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), calories, protein, fat, carbs, COALESCE(image_url, ''), created_at
		FROM dishes
		WHERE id = $1`, id).
		Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Calories, &dish.Protein,
			&dish.Fat, &dish.Carbs, &dish.ImageURL, &dish.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &dish, nil
}

func (r *PostgresRepository) UpdateDish(dish *domain.Dish) error {
	err := r.DB.QueryRow(`
		UPDATE dishes
		SET name=$1, description=$2, calories=$3, protein=$4, fat=$5, carbs=$6
		WHERE id=$7
		RETURNING COALESCE(image_url, ''), created_at`,
		dish.Name, dish.Description, dish.Calories, dish.Protein, dish.Fat, dish.Carbs, dish.ID).
		Scan(&dish.ImageURL, &dish.CreatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteDish(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateDishImage(id int, imageURL string) error {
	_, err := r.DB.Exec("UPDATE dishes SET image_url = $1 WHERE id = $2", imageURL, id)
	return err
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO weekly_menu_items (week_start, day_of_week, meal_slot, servings, dish_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		item.WeekStart, item.DayOfWeek, item.MealSlot, item.Servings, item.DishID).
		Scan(&item.ID)
}

func (r *PostgresRepository) ListMenuItems(weekStart string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT mi.id, to_char(mi.week_start, 'YYYY-MM-DD'), mi.day_of_week, mi.meal_slot, mi.servings,
		       d.id, d.name, COALESCE(d.description, ''), d.calories, d.protein, d.fat, d.carbs,
		       COALESCE(d.image_url, ''), d.created_at
		FROM weekly_menu_items mi
		JOIN dishes d ON d.id = mi.dish_id
		WHERE mi.week_start = $1
		ORDER BY mi.day_of_week, mi.id`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var dish domain.Dish
		if err := rows.Scan(&item.ID, &item.WeekStart, &item.DayOfWeek, &item.MealSlot, &item.Servings,
			&dish.ID, &dish.Name, &dish.Description, &dish.Calories, &dish.Protein, &dish.Fat, &dish.Carbs,
			&dish.ImageURL, &dish.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		item.DishID = dish.ID
		item.Dish = &dish
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) DeleteMenuItem(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM weekly_menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SlotNutrition(weekStart string) ([]domain.SlotNutrition, error) {
	rows, err := r.DB.Query(`
		SELECT mi.day_of_week, mi.meal_slot,
		       COALESCE(SUM(d.calories * mi.servings), 0),
		       COALESCE(SUM(d.protein * mi.servings), 0),
		       COALESCE(SUM(d.fat * mi.servings), 0),
		       COALESCE(SUM(d.carbs * mi.servings), 0),
		       COALESCE(SUM(mi.servings), 0)
		FROM weekly_menu_items mi
		JOIN dishes d ON d.id = mi.dish_id
		WHERE mi.week_start = $1
		GROUP BY mi.day_of_week, mi.meal_slot
		ORDER BY mi.day_of_week`, weekStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.SlotNutrition
	for rows.Next() {
		var slot domain.SlotNutrition
		t := &slot.Totals
		if err := rows.Scan(&slot.DayOfWeek, &slot.MealSlot, &t.Calories, &t.Protein, &t.Fat, &t.Carbs, &t.Servings); err != nil {
			return nil, fmt.Errorf("scan slot nutrition: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			calories NUMERIC NOT NULL DEFAULT 0,
			protein NUMERIC NOT NULL DEFAULT 0,
			fat NUMERIC NOT NULL DEFAULT 0,
			carbs NUMERIC NOT NULL DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS weekly_menu_items (
			id SERIAL PRIMARY KEY,
			week_start DATE NOT NULL,
			day_of_week SMALLINT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
			meal_slot TEXT NOT NULL,
			servings INTEGER NOT NULL DEFAULT 1,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE
		)`,
		"CREATE INDEX IF NOT EXISTS idx_weekly_menu_items_week ON weekly_menu_items(week_start)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
