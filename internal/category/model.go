package category

import "time"

type Category struct {
	ID          string
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
}
