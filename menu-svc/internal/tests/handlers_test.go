package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "carehome/menu-svc/internal/api/http"
	"carehome/menu-svc/internal/domain"
	"carehome/menu-svc/internal/mocks"
	"carehome/menu-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dishes *mocks.DishRepository
	menus  *mocks.MenuRepository
	qr     *mocks.QRGenerator
	router *mux.Router
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		dishes: new(mocks.DishRepository),
		menus:  new(mocks.MenuRepository),
		qr:     new(mocks.QRGenerator),
	}
	handler := httpapi.NewHandler(
		service.NewDishService(f.dishes),
		service.NewMenuService(f.menus, f.dishes, f.qr),
		nil,
	)
	handler.UploadDir = t.TempDir()
	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *fixture) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestCreateDishHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.DishRepository)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"name":"Phở bò","calories":420}`,
			setupMock: func(m *mocks.DishRepository) {
				m.On("CreateDish", mock.AnythingOfType("*domain.Dish")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.DishRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing name",
			body:      `{"calories":10}`,
			setupMock: func(m *mocks.DishRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"name":"Cháo"}`,
			setupMock: func(m *mocks.DishRepository) {
				m.On("CreateDish", mock.AnythingOfType("*domain.Dish")).Return(assert.AnError).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f.dishes)

			w := f.do("POST", "/api/dishes", []byte(testCase.body))

			assert.Equal(t, testCase.wantCode, w.Code)
			f.dishes.AssertExpectations(t)
		})
	}
}

func TestGetDishHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		mockDish  *domain.Dish
		mockError error
		wantCode  int
	}{
		{name: "found", id: "1", mockDish: &domain.Dish{ID: 1, Name: "Phở bò"}, wantCode: http.StatusOK},
		{name: "not found", id: "999", mockError: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "database error", id: "2", mockError: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.dishes.On("GetDish", mock.Anything).Return(testCase.mockDish, testCase.mockError).Once()

			w := f.do("GET", "/api/dishes/"+testCase.id, nil)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteDishHandler(t *testing.T) {
	f := newFixture(t)
	f.dishes.On("DeleteDish", 1).Return(int64(1), nil).Once()
	f.dishes.On("DeleteDish", 2).Return(int64(0), nil).Once()

	assert.Equal(t, http.StatusNoContent, f.do("DELETE", "/api/dishes/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do("DELETE", "/api/dishes/2", nil).Code)
}

func TestUploadDishImageHandler(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantCode    int
		wantUpdate  bool
	}{
		{name: "png accepted", contentType: "image/png", wantCode: http.StatusOK, wantUpdate: true},
		{name: "pdf rejected", contentType: "application/pdf", wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			if testCase.wantUpdate {
				f.dishes.On("UpdateDishImage", 3, "/uploads/dish_3_pho.png").Return(nil).Once()
			}

			var body bytes.Buffer
			writer := multipart.NewWriter(&body)
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", `form-data; name="image"; filename="pho.png"`)
			header.Set("Content-Type", testCase.contentType)
			part, err := writer.CreatePart(header)
			require.NoError(t, err)
			part.Write([]byte("not really a png"))
			require.NoError(t, writer.Close())

			req := httptest.NewRequest("POST", "/api/dishes/3/image", &body)
			req.Header.Set("Content-Type", writer.FormDataContentType())
			w := httptest.NewRecorder()
			f.router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			f.dishes.AssertExpectations(t)
		})
	}
}

func TestCreateMenuItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*fixture)
		wantCode  int
	}{
		{
			name: "valid item",
			body: `{"week_start":"2026-10-12","day_of_week":0,"meal_slot":"lunch","servings":2,"dish_id":5}`,
			setupMock: func(f *fixture) {
				f.dishes.On("GetDish", 5).Return(&domain.Dish{ID: 5, Name: "Phở bò"}, nil).Once()
				f.menus.On("CreateMenuItem", mock.AnythingOfType("*domain.MenuItem")).
					Run(func(args mock.Arguments) { args.Get(0).(*domain.MenuItem).ID = 11 }).
					Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{"week_start":`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown slot",
			body:      `{"week_start":"2026-10-12","day_of_week":0,"meal_slot":"brunch","dish_id":5}`,
			setupMock: func(*fixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			testCase.setupMock(f)

			w := f.do("POST", "/api/menus/items", []byte(testCase.body))

			assert.Equal(t, testCase.wantCode, w.Code)
			f.menus.AssertExpectations(t)
			f.dishes.AssertExpectations(t)
		})
	}
}

func TestGetWeeklyMenuHandler(t *testing.T) {
	f := newFixture(t)
	f.menus.On("ListMenuItems", "2026-10-12").Return([]domain.MenuItem{
		{ID: 1, WeekStart: "2026-10-12", DayOfWeek: 0, MealSlot: "lunch", Servings: 1, DishID: 5,
			Dish: &domain.Dish{ID: 5, Name: "Phở bò"}},
	}, nil).Once()

	w := f.do("GET", "/api/menus/2026-10-14", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu domain.WeeklyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menu))
	assert.Equal(t, "2026-10-12", menu.WeekStart)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "Phở bò", menu.Items[0].Dish.Name)
}

func TestNutritionReportHandler(t *testing.T) {
	f := newFixture(t)
	f.menus.On("SlotNutrition", "2026-10-12").Return([]domain.SlotNutrition{
		{DayOfWeek: 0, MealSlot: "lunch", Totals: domain.NutritionTotals{Calories: 840, Servings: 2}},
	}, nil).Once()

	w := f.do("GET", "/api/menus/2026-10-12/nutrition-report", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Data    domain.NutritionReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 840.0, envelope.Data.Week.Calories)
}

func TestMenuQRCodeHandler(t *testing.T) {
	f := newFixture(t)
	f.qr.On("Generate", "2026-10-12").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	w := f.do("GET", "/api/menus/2026-10-12/qrcode", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, w.Body.Bytes())
}

func TestMenuRoutesRejectBadWeek(t *testing.T) {
	f := newFixture(t)

	w := f.do("GET", "/api/menus/2026-13-45", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler(t *testing.T) {
	f := newFixture(t)

	w := f.do("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"menu-svc"`)
}
