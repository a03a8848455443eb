package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is stored as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for StringList")
}

// Micronutrient is one named amount (e.g. {"Vitamin C", 8.4}).
type Micronutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// MicronutrientList is stored as a jsonb column.
type MicronutrientList []Micronutrient

func (l MicronutrientList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *MicronutrientList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for MicronutrientList")
}

type Macronutrients struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

type Nutrition struct {
	Calories       float64           `json:"calories"`
	Macronutrients Macronutrients    `json:"macronutrients" gorm:"embedded"`
	Vitamins       MicronutrientList `json:"vitamins" gorm:"type:jsonb"`
	Minerals       MicronutrientList `json:"minerals" gorm:"type:jsonb"`
}

// MealRecord is one logged meal. Records are append-only: the store assigns
// ID and CreatedAt on write and nothing updates or deletes them afterwards,
// so there are no UpdatedAt/DeletedAt columns.
type MealRecord struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index;not null"`

	ImageURL  string     `json:"image_url" gorm:"not null"`
	FoodItems StringList `json:"food_items" gorm:"type:jsonb;not null"`
	Nutrition Nutrition  `json:"nutrition" gorm:"embedded;embeddedPrefix:nutrition_"`
}
