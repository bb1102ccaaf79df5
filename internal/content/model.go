package content

import "time"

// Hero is a homepage carousel slide.
type Hero struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShopNow is the single promotional banner below the hero.
type ShopNow struct {
	ID          string    `json:"id"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AnnouncementBar holds the rotating texts above the navbar.
type AnnouncementBar struct {
	ID        string    `json:"-"`
	Texts     []string  `json:"texts"`
	UpdatedAt time.Time `json:"-"`
}

// InstagramPost is one tile of the instagram strip as stored.
type InstagramPost struct {
	CoverImage  string `json:"coverimage"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// Instagram is the account section with its posts.
type Instagram struct {
	ID          string          `json:"id"`
	Logo        string          `json:"logo"`
	AccountName string          `json:"accountName"`
	Posts       []InstagramPost `json:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
