package server

import (
	"dipadubank/internal/models"
	"dipadubank/internal/repositories"

	"gorm.io/gorm"
)

// resourceRepositories builds one repository per exposed entity
func resourceRepositories(db *gorm.DB) []repositories.ResourceRepositoryInterface {
	return []repositories.ResourceRepositoryInterface{
		repositories.NewResourceRepository[models.BankAccount](db),
		repositories.NewResourceRepository[models.Company](db),
		repositories.NewResourceRepository[models.CryptoTransaction](db),
		repositories.NewResourceRepository[models.CryptoWallet](db),
		repositories.NewResourceRepository[models.TransactionHistory](db),
		repositories.NewResourceRepository[models.User](db),
		repositories.NewResourceRepository[models.UserProfile](db),
	}
}
