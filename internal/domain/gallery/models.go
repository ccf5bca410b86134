package gallery

import "time"

// Entity rows reference uploaded assets by their external reference string
// (numeric id or storage UUID), never by foreign key. The asset pipeline
// stays decoupled from the content schema.

type Artist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Bio  string `gorm:"type:text" json:"bio,omitempty"`

	PortraitImage string `json:"portrait_image,omitempty"`
	Website       string `json:"website,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Artwork struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`

	ArtistID *uint   `gorm:"index" json:"artist_id,omitempty"`
	Artist   *Artist `gorm:"constraint:OnDelete:SET NULL;" json:"artist,omitempty"`

	Year       string `json:"year,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Price      string `json:"price,omitempty"`
	Available  bool   `gorm:"not null;default:true" json:"available"`

	FeaturedImage string `json:"featured_image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Exhibition struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Location  string     `json:"location,omitempty"`

	FeaturedImage string `json:"featured_image,omitempty"`
	Published     bool   `gorm:"not null;default:false;index" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageContent is editable page text keyed by slug ("about", "contact", ...).
type PageContent struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Slug  string `gorm:"not null;uniqueIndex" json:"slug"`
	Title string `json:"title,omitempty"`
	Body  string `gorm:"type:text" json:"body"`

	UpdatedAt time.Time `json:"updated_at"`
}

type Subscriber struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"not null;uniqueIndex:idx_subscribers_email" json:"email"`
	Name  string `json:"name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
