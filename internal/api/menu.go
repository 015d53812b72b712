package api

import (
	"net/http"

	"choppinzskys-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// MenuData is the full static catalog, defined at process start and never
// mutated. Images use royalty-free placeholders/Unsplash.
var MenuData = []models.MenuCategory{
	{
		Key:   "african",
		Title: "African Delights",
		Items: []models.MenuItem{
			{
				ID:          "puff-puff",
				Name:        "Puff Puff",
				Description: "Golden, fluffy bites lightly dusted with sugar.",
				Image:       "https://images.unsplash.com/photo-1617191518205-29c76d7d6672?q=80&w=1400&auto=format&fit=crop",
				Category:    "African Delights",
			},
			{
				ID:          "akara",
				Name:        "Akara",
				Description: "Crisp bean fritters with a soft, fragrant center.",
				Image:       "https://images.unsplash.com/photo-1604908553982-57e1bdf4cf0f?q=80&w=1400&auto=format&fit=crop",
				Category:    "African Delights",
			},
			{
				ID:          "fried-yam",
				Name:        "Fried Yam",
				Description: "Hearty yam chips, golden and perfectly seasoned.",
				Image:       "https://images.unsplash.com/photo-1547592180-85f173990554?q=80&w=1400&auto=format&fit=crop",
				Category:    "African Delights",
			},
			{
				ID:          "plantain",
				Name:        "Plantain",
				Description: "Sweet ripe plantain slices, caramelized to perfection.",
				Image:       "https://images.unsplash.com/photo-1543332164-6e82f355badc?q=80&w=1400&auto=format&fit=crop",
				Category:    "African Delights",
			},
		},
	},
	{
		Key:   "pastries",
		Title: "Savory Pastries & Rolls",
		Items: []models.MenuItem{
			{
				ID:          "samosa",
				Name:        "Samosa",
				Description: "Crisp pastry stuffed with spiced vegetables or meat.",
				Image:       "https://images.unsplash.com/photo-1683021712492-27cf3ad5f222?q=80&w=1400&auto=format&fit=crop",
				Category:    "Savory Pastries & Rolls",
			},
			{
				ID:          "spring-rolls",
				Name:        "Spring Rolls",
				Description: "Delicate rolls with a vibrant vegetable filling.",
				Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19?q=80&w=1400&auto=format&fit=crop",
				Category:    "Savory Pastries & Rolls",
			},
			{
				ID:          "meat-pie",
				Name:        "Meat Pie",
				Description: "Buttery pastry with a rich, savory filling.",
				Image:       "https://images.unsplash.com/photo-1541781286675-7b3c9817e3d5?q=80&w=1400&auto=format&fit=crop",
				Category:    "Savory Pastries & Rolls",
			},
			{
				ID:          "fish-roll",
				Name:        "Fish Roll",
				Description: "Flaky pastry embracing spiced fish.",
				Image:       "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?q=80&w=1400&auto=format&fit=crop",
				Category:    "Savory Pastries & Rolls",
			},
			{
				ID:          "chicken-roll",
				Name:        "Chicken Roll",
				Description: "Tender chicken seasoned and wrapped in golden pastry.",
				Image:       "https://images.unsplash.com/photo-1543336661-08fc734e01d2?q=80&w=1400&auto=format&fit=crop",
				Category:    "Savory Pastries & Rolls",
			},
		},
	},
	{
		Key:   "global",
		Title: "Global Favourites",
		Items: []models.MenuItem{
			{
				ID:          "potato-swirls",
				Name:        "Potato Swirls",
				Description: "Fun, crispy swirls with a fluffy potato center.",
				Image:       "https://images.unsplash.com/photo-1551183053-bf91a1d81141?q=80&w=1400&auto=format&fit=crop",
				Category:    "Global Favourites",
			},
		},
	},
}

type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, MenuData)
}
