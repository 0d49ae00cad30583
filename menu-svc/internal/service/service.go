package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"carehome/consumption"
	"carehome/menu-svc/internal/domain"
)

var (
	ErrInvalidDish      = errors.New("dish name is required")
	ErrInvalidMenuItem  = errors.New("invalid menu item")
	ErrInvalidWeekStart = errors.New("week start must be a YYYY-MM-DD date")
)

type DishRepository interface {
	CreateDish(dish *domain.Dish) error
	ListDishes() ([]domain.Dish, error)
	GetDish(id int) (*domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(id int) (int64, error)
	UpdateDishImage(id int, imageURL string) error
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(weekStart string) ([]domain.MenuItem, error)
	DeleteMenuItem(id int) (int64, error)
	SlotNutrition(weekStart string) ([]domain.SlotNutrition, error)
}

type DishServiceInterface interface {
	Create(dish *domain.Dish) error
	List() ([]domain.Dish, error)
	Get(id int) (*domain.Dish, error)
	Update(dish *domain.Dish) error
	Delete(id int) (int64, error)
	UpdateImage(id int, imageURL string) error
}

type MenuServiceInterface interface {
	AddItem(item *domain.MenuItem) error
	Week(weekStart string) (*domain.WeeklyMenu, error)
	RemoveItem(id int) (int64, error)
	NutritionReport(weekStart string) (*domain.NutritionReport, error)
	QRCode(weekStart string) ([]byte, error)
}

type DishService struct {
	repo DishRepository
}

func NewDishService(repo DishRepository) *DishService {
	return &DishService{repo: repo}
}

func (s *DishService) Create(dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return ErrInvalidDish
	}
	return s.repo.CreateDish(dish)
}

func (s *DishService) List() ([]domain.Dish, error) {
	return s.repo.ListDishes()
}

func (s *DishService) Get(id int) (*domain.Dish, error) {
	return s.repo.GetDish(id)
}

func (s *DishService) Update(dish *domain.Dish) error {
	if strings.TrimSpace(dish.Name) == "" {
		return ErrInvalidDish
	}
	return s.repo.UpdateDish(dish)
}

func (s *DishService) Delete(id int) (int64, error) {
	return s.repo.DeleteDish(id)
}

func (s *DishService) UpdateImage(id int, imageURL string) error {
	return s.repo.UpdateDishImage(id, imageURL)
}

var _ DishServiceInterface = (*DishService)(nil)

type MenuService struct {
	menus     MenuRepository
	dishes    DishRepository
	qrEncoder QRGenerator
}

func NewMenuService(menus MenuRepository, dishes DishRepository, qr QRGenerator) *MenuService {
	return &MenuService{menus: menus, dishes: dishes, qrEncoder: qr}
}

// AddItem validates and stores one planned dish. The week start must already
// be a Monday; the slot is stored in its canonical spelling.
func (s *MenuService) AddItem(item *domain.MenuItem) error {
	weekStart, err := NormalizeWeekStart(item.WeekStart)
	if err != nil {
		return err
	}
	if weekStart != item.WeekStart {
		return fmt.Errorf("%w: week_start %s is not a Monday", ErrInvalidMenuItem, item.WeekStart)
	}
	if item.DayOfWeek < 0 || item.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week must be 0-6", ErrInvalidMenuItem)
	}
	slot, ok := consumption.ParseMealSlot(item.MealSlot)
	if !ok {
		return fmt.Errorf("%w: unknown meal slot %q", ErrInvalidMenuItem, item.MealSlot)
	}
	item.MealSlot = string(slot)
	if item.Servings == 0 {
		item.Servings = 1
	}
	if item.Servings < 0 {
		return fmt.Errorf("%w: servings must be positive", ErrInvalidMenuItem)
	}
	dish, err := s.dishes.GetDish(item.DishID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: dish %d does not exist", ErrInvalidMenuItem, item.DishID)
		}
		return err
	}
	if err := s.menus.CreateMenuItem(item); err != nil {
		return err
	}
	item.Dish = dish
	return nil
}

func (s *MenuService) Week(weekStart string) (*domain.WeeklyMenu, error) {
	weekStart, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	items, err := s.menus.ListMenuItems(weekStart)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return &domain.WeeklyMenu{WeekStart: weekStart, Items: items}, nil
}

func (s *MenuService) RemoveItem(id int) (int64, error) {
	return s.menus.DeleteMenuItem(id)
}

// NutritionReport sums dish facts times servings per slot, per day and for
// the whole week.
func (s *MenuService) NutritionReport(weekStart string) (*domain.NutritionReport, error) {
	weekStart, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	slots, err := s.menus.SlotNutrition(weekStart)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		return slotOrder(slots[i].MealSlot) < slotOrder(slots[j].MealSlot)
	})

	report := &domain.NutritionReport{WeekStart: weekStart, Slots: slots, Days: []domain.DayNutrition{}}
	if report.Slots == nil {
		report.Slots = []domain.SlotNutrition{}
	}
	for _, slot := range slots {
		n := len(report.Days)
		if n == 0 || report.Days[n-1].DayOfWeek != slot.DayOfWeek {
			report.Days = append(report.Days, domain.DayNutrition{DayOfWeek: slot.DayOfWeek})
			n++
		}
		report.Days[n-1].Totals.Add(slot.Totals)
		report.Week.Add(slot.Totals)
	}
	return report, nil
}

func (s *MenuService) QRCode(weekStart string) ([]byte, error) {
	weekStart, err := NormalizeWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(weekStart)
}

var _ MenuServiceInterface = (*MenuService)(nil)

// NormalizeWeekStart snaps a YYYY-MM-DD date back to its Monday.
func NormalizeWeekStart(s string) (string, error) {
	monday, err := consumption.ParseWeekStart(s, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
	}
	return monday.Format(consumption.DateLayout), nil
}

func slotOrder(slot string) int {
	for i, known := range consumption.MealSlots {
		if strings.EqualFold(slot, string(known)) {
			return i
		}
	}
	return len(consumption.MealSlots)
}
