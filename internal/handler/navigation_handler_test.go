package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/appdotbuilder/dating-app-website/internal/db"
	"github.com/gin-gonic/gin"
)

func TestCreateNavigationItemMissingPageReturns400(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, http.MethodPost, "/api/navigation-items", map[string]any{
		"label":       "Ghost",
		"slug":        "ghost",
		"order_index": 0,
	})

	api.CreateNavigationItem(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var count int64
	if err := db.DB.Model(&db.NavigationItem{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no partial write, got %d rows", count)
	}
}

func TestCreateNavigationItemRequiresOrderIndex(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedTestPage(t, "landing")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, http.MethodPost, "/api/navigation-items", map[string]any{
		"label": "Home",
		"slug":  "landing",
	})

	api.CreateNavigationItem(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestDeleteNavigationItemCompactsOrderOverHTTP(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedTestPage(t, "landing")
	seedTestPage(t, "about")
	seedTestPage(t, "help")

	var ids []uint
	for i, label := range []string{"Home", "About", "Help"} {
		item := db.NavigationItem{Label: label, Slug: "landing", OrderIndex: i, IsVisible: true}
		if err := db.DB.Create(&item).Error; err != nil {
			t.Fatalf("failed to seed item: %v", err)
		}
		ids = append(ids, item.ID)
	}

	id := strconv.Itoa(int(ids[1]))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/navigation-items/"+id, nil)
	c.Params = gin.Params{gin.Param{Key: "id", Value: id}}

	api.DeleteNavigationItem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Deleted bool `json:"deleted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Deleted {
		t.Fatal("expected deleted=true")
	}

	var items []db.NavigationItem
	if err := db.DB.Order("order_index asc").Find(&items).Error; err != nil {
		t.Fatalf("failed to read items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(items))
	}
	if items[0].ID != ids[0] || items[0].OrderIndex != 0 {
		t.Fatalf("expected first item untouched, got %+v", items[0])
	}
	if items[1].ID != ids[2] || items[1].OrderIndex != 1 {
		t.Fatalf("expected trailing item to close the gap, got %+v", items[1])
	}
}

func TestGetVisibleNavigationItemsFiltersHidden(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	seedTestPage(t, "landing")
	for i, visible := range []bool{true, false, true} {
		item := db.NavigationItem{Label: "Item", Slug: "landing", OrderIndex: i, IsVisible: visible}
		if err := db.DB.Create(&item).Error; err != nil {
			t.Fatalf("failed to seed item: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/navigation-items/visible", nil)

	api.GetVisibleNavigationItems(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Items []db.NavigationItem `json:"navigation_items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(resp.Items))
	}
	for _, item := range resp.Items {
		if !item.IsVisible {
			t.Fatalf("expected only visible items, got %+v", item)
		}
	}
}

func TestUpdateNavigationItemMissingReturnsNull(t *testing.T) {
	api, cleanup := setupTestDB(t)
	defer cleanup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newJSONRequest(t, http.MethodPut, "/api/navigation-items/999999", map[string]any{
		"label": "Renamed",
	})
	c.Params = gin.Params{gin.Param{Key: "id", Value: "999999"}}

	api.UpdateNavigationItem(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for soft miss, got %d", w.Code)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if string(resp["navigation_item"]) != "null" {
		t.Fatalf("expected null navigation_item, got %s", resp["navigation_item"])
	}
}
