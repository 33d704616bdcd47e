package application

import (
	"errors"
	"fmt"

	"github.com/improvemycity/portal-go/dto"
	"github.com/improvemycity/portal-go/internal/repository"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/utils"
	"gorm.io/gorm"
)

// CategoryService covers admin category CRUD and the employee-owned
// subcategory CRUD underneath it.
type CategoryService struct {
	Repos *repository.Repos
}

func NewCategoryService(repos *repository.Repos) *CategoryService {
	return &CategoryService{Repos: repos}
}

func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.Repos.Category.ListCategories()
}

func (s *CategoryService) CreateCategory(adminID uint, input dto.CreateCategoryDTO) (models.Category, error) {
	cat := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.Repos.Category.CreateCategory(&cat); err != nil {
		return models.Category{}, err
	}
	utils.LogAuditWithConsole(adminID, "create", "category", fmt.Sprint(cat.ID), cat.Name, s.Repos.Audit)
	return cat, nil
}

func (s *CategoryService) UpdateCategory(adminID, id uint, input dto.UpdateCategoryDTO) (models.Category, error) {
	cat, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return models.Category{}, err
	}

	if input.Name != nil {
		cat.Name = *input.Name
	}
	if input.Description != nil {
		cat.Description = *input.Description
	}
	if err := s.Repos.Category.SaveCategory(&cat); err != nil {
		return models.Category{}, err
	}
	utils.LogAuditWithConsole(adminID, "update", "category", fmt.Sprint(cat.ID), cat.Name, s.Repos.Audit)
	return cat, nil
}

// DeleteCategory refuses to delete a category that complaints,
// subcategories, or staff still reference.
func (s *CategoryService) DeleteCategory(adminID, id uint) error {
	cat, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return err
	}

	referenced, err := s.Repos.Category.IsReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrCategoryInUse
	}

	if err := s.Repos.Category.DeleteCategory(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(adminID, "delete", "category", fmt.Sprint(id), cat.Name, s.Repos.Audit)
	return nil
}

func (s *CategoryService) ListSubCategories(categoryID uint) ([]models.SubCategory, error) {
	if _, err := s.Repos.Category.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
		}
		return nil, err
	}
	return s.Repos.SubCategory.ListSubCategoriesByCategory(categoryID)
}

// requireCategoryOwner loads the acting employee and checks approval;
// subcategory writes are scoped to the employee's own category.
func (s *CategoryService) requireCategoryOwner(employeeID uint) (models.User, error) {
	usr, err := s.Repos.User.GetUserByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("%w: user %d", ErrNotFound, employeeID)
		}
		return models.User{}, err
	}
	if usr.Role != models.UserRoleEmployee {
		return models.User{}, fmt.Errorf("%w: employee role required", ErrForbidden)
	}
	if !usr.IsApproved() {
		return models.User{}, ErrNotApproved
	}
	return usr, nil
}

func (s *CategoryService) ListOwnSubCategories(employeeID uint) ([]models.SubCategory, error) {
	employee, err := s.requireCategoryOwner(employeeID)
	if err != nil {
		return nil, err
	}
	return s.Repos.SubCategory.ListSubCategoriesByCategory(*employee.SelectedCategoryID)
}

func (s *CategoryService) CreateSubCategory(employeeID uint, input dto.CreateSubCategoryDTO) (models.SubCategory, error) {
	employee, err := s.requireCategoryOwner(employeeID)
	if err != nil {
		return models.SubCategory{}, err
	}

	sub := models.SubCategory{
		CategoryID:  *employee.SelectedCategoryID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.Repos.SubCategory.CreateSubCategory(&sub); err != nil {
		return models.SubCategory{}, err
	}
	return sub, nil
}

func (s *CategoryService) UpdateSubCategory(employeeID, id uint, input dto.UpdateSubCategoryDTO) (models.SubCategory, error) {
	employee, err := s.requireCategoryOwner(employeeID)
	if err != nil {
		return models.SubCategory{}, err
	}

	sub, err := s.Repos.SubCategory.GetSubCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SubCategory{}, fmt.Errorf("%w: subcategory %d", ErrNotFound, id)
		}
		return models.SubCategory{}, err
	}
	if sub.CategoryID != *employee.SelectedCategoryID {
		return models.SubCategory{}, ErrCategoryMismatch
	}

	if input.Name != nil {
		sub.Name = *input.Name
	}
	if input.Description != nil {
		sub.Description = *input.Description
	}
	sub.Category = nil
	if err := s.Repos.SubCategory.SaveSubCategory(&sub); err != nil {
		return models.SubCategory{}, err
	}
	return sub, nil
}

func (s *CategoryService) DeleteSubCategory(employeeID, id uint) error {
	employee, err := s.requireCategoryOwner(employeeID)
	if err != nil {
		return err
	}

	sub, err := s.Repos.SubCategory.GetSubCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: subcategory %d", ErrNotFound, id)
		}
		return err
	}
	if sub.CategoryID != *employee.SelectedCategoryID {
		return ErrCategoryMismatch
	}

	referenced, err := s.Repos.SubCategory.IsSubCategoryReferenced(id)
	if err != nil {
		return err
	}
	if referenced {
		return fmt.Errorf("%w: subcategory is still referenced by complaints", ErrConflict)
	}
	return s.Repos.SubCategory.DeleteSubCategory(id)
}
