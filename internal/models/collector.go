package models

import "time"

// Collector - сборщик отходов из таблицы лидеров
type Collector struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Points    int       `json:"points"`
	History   string    `json:"history"`
	CreatedAt time.Time `json:"created_at"`
}
