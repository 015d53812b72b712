package api

import (
	"net/http"
	"testing"

	"choppinzskys-backend/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuReturnsFullCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, "GET", "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.MenuCategory
	decodeJSON(t, w, &categories)
	require.Len(t, categories, 3)

	assert.Equal(t, "african", categories[0].Key)
	assert.Equal(t, "African Delights", categories[0].Title)
	assert.Len(t, categories[0].Items, 4)
	assert.Equal(t, "puff-puff", categories[0].Items[0].ID)

	assert.Equal(t, "pastries", categories[1].Key)
	assert.Len(t, categories[1].Items, 5)

	assert.Equal(t, "global", categories[2].Key)
	assert.Len(t, categories[2].Items, 1)
	assert.Equal(t, "potato-swirls", categories[2].Items[0].ID)

	for _, cat := range categories {
		for _, item := range cat.Items {
			assert.NotEmpty(t, item.Name)
			assert.NotEmpty(t, item.Description)
			assert.Contains(t, item.Image, "https://")
			assert.Equal(t, cat.Title, item.Category)
		}
	}
}

func TestGetMenuIsDeterministic(t *testing.T) {
	r := newTestRouter(t)

	first := perform(t, r, "GET", "/api/menu", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := perform(t, r, "GET", "/api/menu", nil)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
}
