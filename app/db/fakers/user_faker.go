package fakers

import (
	"github.com/foodhubdev/foodhub/app/helpers"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFaker builds a throwaway customer account for development databases.
func UserFaker(db *gorm.DB) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Email:     faker.Email(),
		Password:  helpers.HashPassword("password123"),
		Phone:     faker.Phonenumber(),
		Address:   faker.Sentence(),
		City:      faker.Word(),
		Role:      models.RoleCustomer,
	}
}
