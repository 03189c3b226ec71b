package repository

import (
	"errors"
	"log"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/domain"
	"gorm.io/gorm"
)

// ExperienceFilter narrows List results. Company and position are
// substring matches; each tag must appear in the stored tag blob.
type ExperienceFilter struct {
	Company  string
	Position string
	Tags     []string
	Skip     int
	Limit    int
}

type ExperienceRepository interface {
	Create(exp *domain.Experience) (*domain.Experience, error)
	FindByID(id uint) (*domain.Experience, error)
	List(f ExperienceFilter) ([]domain.Experience, error)
	Search(query string, skip, limit int) ([]domain.Experience, error)
	Save(exp *domain.Experience) error
	Delete(exp *domain.Experience) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(exp *domain.Experience) (*domain.Experience, error) {
	if exp == nil {
		return nil, errors.New("nil experience")
	}

	if err := r.db.Create(exp).Error; err != nil {
		log.Printf("create experience error: %v", err)
		return nil, errors.New("failed to create experience")
	}

	return exp, nil
}

func (r *experienceRepository) FindByID(id uint) (*domain.Experience, error) {
	exp := &domain.Experience{}

	if err := r.db.First(exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		log.Printf("find experience by id error: %v", err)
		return nil, errors.New("failed to find experience by ID")
	}

	return exp, nil
}

func (r *experienceRepository) List(f ExperienceFilter) ([]domain.Experience, error) {
	q := r.db.Model(&domain.Experience{})

	if f.Company != "" {
		q = q.Where("company LIKE ?", "%"+f.Company+"%")
	}
	if f.Position != "" {
		q = q.Where("position LIKE ?", "%"+f.Position+"%")
	}
	for _, tag := range f.Tags {
		q = q.Where("tags LIKE ?", "%"+tag+"%")
	}

	var out []domain.Experience
	err := q.Order("created_at DESC").
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&out).Error
	if err != nil {
		log.Printf("list experiences error: %v", err)
		return nil, errors.New("failed to list experiences")
	}

	return out, nil
}

func (r *experienceRepository) Search(query string, skip, limit int) ([]domain.Experience, error) {
	like := "%" + query + "%"

	var out []domain.Experience
	err := r.db.
		Where("company LIKE ? OR position LIKE ? OR summary LIKE ? OR content LIKE ? OR tags LIKE ?",
			like, like, like, like, like).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("search experiences error: %v", err)
		return nil, errors.New("failed to search experiences")
	}

	return out, nil
}

func (r *experienceRepository) Save(exp *domain.Experience) error {
	if exp == nil {
		return errors.New("nil experience")
	}

	if err := r.db.Save(exp).Error; err != nil {
		log.Printf("save experience error: %v", err)
		return errors.New("failed to save experience")
	}
	return nil
}

func (r *experienceRepository) Delete(exp *domain.Experience) error {
	if exp == nil || exp.ID == 0 {
		return errors.New("nil experience")
	}

	if err := r.db.Delete(exp).Error; err != nil {
		log.Printf("delete experience error: %v", err)
		return errors.New("failed to delete experience")
	}
	return nil
}
