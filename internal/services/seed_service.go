package services

import (
	"log"

	"tienda/internal/models"
	"tienda/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// SeedService wipes and repopulates the user and product tables from the
// static fixture data. It talks to the catalog through ProductService so
// seeded products get the same slug normalization as regular creates.
type SeedService struct {
	products *ProductService
	userRepo repositories.UserRepository
}

// NewSeedService creates a new SeedService.
func NewSeedService(products *ProductService, userRepo repositories.UserRepository) *SeedService {
	return &SeedService{
		products: products,
		userRepo: userRepo,
	}
}

// RunSeed wipes both tables, inserts the fixture users and then the
// fixture products, owned by the first seeded user. It returns a
// completion marker on success.
func (s *SeedService) RunSeed() (string, error) {
	if err := s.products.DeleteAllProducts(); err != nil {
		return "", err
	}
	if err := s.userRepo.DeleteAll(); err != nil {
		log.Printf("Failed to wipe users: %v", err)
		return "", ErrInternal
	}

	var owner *models.User
	for _, fu := range seedUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(fu.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash seed password: %v", err)
			return "", ErrInternal
		}
		user := &models.User{
			Email:    fu.email,
			Password: string(hashed),
			FullName: fu.fullName,
			IsActive: true,
			Roles:    fu.roles,
		}
		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Failed to seed user %s: %v", fu.email, err)
			return "", ErrInternal
		}
		if owner == nil {
			owner = user
		}
	}

	for _, in := range seedProducts {
		if _, err := s.products.CreateProduct(in, owner); err != nil {
			return "", err
		}
	}
	return "SEED EXECUTED", nil
}
