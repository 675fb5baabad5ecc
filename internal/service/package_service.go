package service

import (
	"sort"

	"github.com/sefazor/premium-backend/internal/models"
)

type PackageService struct {
	packages map[string]string
}

func NewPackageService() *PackageService {
	return &PackageService{
		packages: models.Packages,
	}
}

func (s *PackageService) GetPackage(name string) (models.Package, error) {
	priceID, ok := s.packages[name]
	if !ok || priceID == "" {
		return models.Package{}, ErrInvalidPackage
	}
	return models.Package{Name: name, PriceID: priceID}, nil
}

func (s *PackageService) GetAllPackages() []models.Package {
	packages := make([]models.Package, 0, len(s.packages))
	for name, priceID := range s.packages {
		packages = append(packages, models.Package{Name: name, PriceID: priceID})
	}
	sort.Slice(packages, func(i, j int) bool { return packages[i].Name < packages[j].Name })
	return packages
}
