package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/domain"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/repository"
)

type ExperienceService interface {
	Create(input dto.ExperienceCreate, ownerPhone string) (*dto.ExperienceResponse, error)
	Get(id uint) (*dto.ExperienceResponse, error)
	List(q dto.ExperienceQuery) ([]dto.ExperienceResponse, error)
	Search(query string, skip, limit int) ([]dto.ExperienceResponse, error)
	Update(id uint, input dto.ExperienceUpdate, callerPhone string) (*dto.ExperienceResponse, error)
	Delete(id uint, callerPhone string) error
}

type experienceService struct {
	repo     repository.ExperienceRepository
	userRepo repository.UserRepository
}

func NewExperienceService(
	repo repository.ExperienceRepository,
	userRepo repository.UserRepository,
) ExperienceService {
	return &experienceService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *experienceService) Create(input dto.ExperienceCreate, ownerPhone string) (*dto.ExperienceResponse, error) {
	company := strings.TrimSpace(input.Company)
	position := strings.TrimSpace(input.Position)

	if company == "" || position == "" || strings.TrimSpace(input.Summary) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: company, position, summary and content are required", common.ErrInvalidInput)
	}
	if len(company) > 100 || len(position) > 100 {
		return nil, fmt.Errorf("%w: company and position are limited to 100 characters", common.ErrInvalidInput)
	}
	if input.Difficulty < 0 || input.Difficulty > 5 {
		return nil, fmt.Errorf("%w: difficulty must be between 0.0 and 5.0", common.ErrInvalidInput)
	}

	owner, err := s.userRepo.FindUserByPhone(ownerPhone)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: owner", common.ErrNotFound)
		}
		return nil, err
	}

	// always serialized, empty list when absent
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	blob, err := json.Marshal(tags)
	if err != nil {
		return nil, errors.New("failed to serialize tags")
	}

	exp := &domain.Experience{
		Company:    company,
		Position:   position,
		Summary:    input.Summary,
		Content:    input.Content,
		Difficulty: input.Difficulty,
		Tags:       string(blob),
		UserID:     owner.ID,
	}

	created, err := s.repo.Create(exp)
	if err != nil {
		return nil, err
	}

	return toExperienceResponse(created), nil
}

func (s *experienceService) Get(id uint) (*dto.ExperienceResponse, error) {
	exp, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toExperienceResponse(exp), nil
}

func (s *experienceService) List(q dto.ExperienceQuery) ([]dto.ExperienceResponse, error) {
	if err := validatePage(q.Skip, q.Limit); err != nil {
		return nil, err
	}

	items, err := s.repo.List(repository.ExperienceFilter{
		Company:  strings.TrimSpace(q.Company),
		Position: strings.TrimSpace(q.Position),
		Tags:     q.Tags,
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		return nil, err
	}

	return toExperienceResponses(items), nil
}

func (s *experienceService) Search(query string, skip, limit int) ([]dto.ExperienceResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", common.ErrInvalidInput)
	}
	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}

	items, err := s.repo.Search(query, skip, limit)
	if err != nil {
		return nil, err
	}

	return toExperienceResponses(items), nil
}

// Update patches an experience. Missing record and foreign owner are
// reported the same way so callers cannot probe for existence.
func (s *experienceService) Update(id uint, input dto.ExperienceUpdate, callerPhone string) (*dto.ExperienceResponse, error) {
	exp, err := s.ownedExperience(id, callerPhone)
	if err != nil {
		return nil, err
	}

	if input.Company != nil {
		company := strings.TrimSpace(*input.Company)
		if company == "" || len(company) > 100 {
			return nil, fmt.Errorf("%w: invalid company", common.ErrInvalidInput)
		}
		exp.Company = company
	}
	if input.Position != nil {
		position := strings.TrimSpace(*input.Position)
		if position == "" || len(position) > 100 {
			return nil, fmt.Errorf("%w: invalid position", common.ErrInvalidInput)
		}
		exp.Position = position
	}
	if input.Summary != nil {
		exp.Summary = *input.Summary
	}
	if input.Content != nil {
		exp.Content = *input.Content
	}
	if input.Difficulty != nil {
		if *input.Difficulty < 0 || *input.Difficulty > 5 {
			return nil, fmt.Errorf("%w: difficulty must be between 0.0 and 5.0", common.ErrInvalidInput)
		}
		exp.Difficulty = *input.Difficulty
	}
	if input.Tags != nil {
		blob, err := json.Marshal(input.Tags)
		if err != nil {
			return nil, errors.New("failed to serialize tags")
		}
		exp.Tags = string(blob)
	}

	if err := s.repo.Save(exp); err != nil {
		return nil, err
	}

	return toExperienceResponse(exp), nil
}

func (s *experienceService) Delete(id uint, callerPhone string) error {
	exp, err := s.ownedExperience(id, callerPhone)
	if err != nil {
		return err
	}
	return s.repo.Delete(exp)
}

// ownedExperience loads the record only when it exists and belongs to
// the caller; any other outcome is a uniform not-found.
func (s *experienceService) ownedExperience(id uint, callerPhone string) (*domain.Experience, error) {
	caller, err := s.userRepo.FindUserByPhone(callerPhone)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	exp, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if exp.UserID != caller.ID {
		return nil, common.ErrNotFound
	}

	return exp, nil
}

func validatePage(skip, limit int) error {
	if skip < 0 {
		return fmt.Errorf("%w: skip must not be negative", common.ErrInvalidInput)
	}
	if limit < 1 || limit > 100 {
		return fmt.Errorf("%w: limit must be between 1 and 100", common.ErrInvalidInput)
	}
	return nil
}

func toExperienceResponse(exp *domain.Experience) *dto.ExperienceResponse {
	tags := []string{}
	if exp.Tags != "" {
		if err := json.Unmarshal([]byte(exp.Tags), &tags); err != nil {
			log.Printf("bad tag blob on experience %d: %v", exp.ID, err)
			tags = []string{}
		}
	}

	return &dto.ExperienceResponse{
		ID:         exp.ID,
		Company:    exp.Company,
		Position:   exp.Position,
		Summary:    exp.Summary,
		Content:    exp.Content,
		Difficulty: exp.Difficulty,
		Tags:       tags,
		UserID:     exp.UserID,
		CreatedAt:  exp.CreatedAt,
		UpdatedAt:  exp.UpdatedAt,
	}
}

func toExperienceResponses(items []domain.Experience) []dto.ExperienceResponse {
	out := make([]dto.ExperienceResponse, 0, len(items))
	for i := range items {
		out = append(out, *toExperienceResponse(&items[i]))
	}
	return out
}
