package domain

import "time"

type Article struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Author    string    `json:"author"`
	ImgPath   string    `json:"imgPath,omitempty"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
