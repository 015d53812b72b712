package models

// MenuItem is one entry of the static catalog
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// MenuCategory groups menu items under a stable key
type MenuCategory struct {
	Key   string     `json:"key"`
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}
