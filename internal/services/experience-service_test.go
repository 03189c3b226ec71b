package services

import (
	"errors"
	"testing"
	"time"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/domain"
	"github.com/interview-express/experience_service/internal/dto"
	"github.com/interview-express/experience_service/internal/repository"
)

type fakeExperienceRepo struct {
	items  map[uint]*domain.Experience
	nextID uint
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{items: map[uint]*domain.Experience{}}
}

func (f *fakeExperienceRepo) Create(exp *domain.Experience) (*domain.Experience, error) {
	f.nextID++
	exp.ID = f.nextID
	exp.CreatedAt = time.Now()
	exp.UpdatedAt = exp.CreatedAt
	cp := *exp
	f.items[exp.ID] = &cp
	return exp, nil
}

func (f *fakeExperienceRepo) FindByID(id uint) (*domain.Experience, error) {
	if e, ok := f.items[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeExperienceRepo) List(filter repository.ExperienceFilter) ([]domain.Experience, error) {
	out := make([]domain.Experience, 0, len(f.items))
	for _, e := range f.items {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeExperienceRepo) Search(query string, skip, limit int) ([]domain.Experience, error) {
	return f.List(repository.ExperienceFilter{})
}

func (f *fakeExperienceRepo) Save(exp *domain.Experience) error {
	cp := *exp
	f.items[exp.ID] = &cp
	return nil
}

func (f *fakeExperienceRepo) Delete(exp *domain.Experience) error {
	delete(f.items, exp.ID)
	return nil
}

var _ repository.ExperienceRepository = (*fakeExperienceRepo)(nil)

func newTestExperienceService(t *testing.T) (ExperienceService, *fakeExperienceRepo, *fakeUserRepo) {
	t.Helper()

	users := newFakeUserRepo()
	if _, err := users.CreateUser(&domain.User{Phone: "13800138000", Username: "owner", IsActive: true}); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if _, err := users.CreateUser(&domain.User{Phone: "13800138001", Username: "other", IsActive: true}); err != nil {
		t.Fatalf("seed other: %v", err)
	}

	repo := newFakeExperienceRepo()
	return NewExperienceService(repo, users), repo, users
}

func TestExperienceCreate_Defaults(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestExperienceService(t)

	created, err := svc.Create(dto.ExperienceCreate{
		Company:  "Acme",
		Position: "SWE",
		Summary:  "s",
		Content:  "c",
	}, "13800138000")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if created.Difficulty != 0.0 {
		t.Fatalf("difficulty = %v, want 0.0", created.Difficulty)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Fatalf("tags = %#v, want empty list", created.Tags)
	}

	// tags are persisted as an empty JSON list, not null
	stored := repo.items[created.ID]
	if stored.Tags != "[]" {
		t.Fatalf("stored tag blob = %q, want []", stored.Tags)
	}
	if stored.UserID != 1 {
		t.Fatalf("owner id = %d, want 1", stored.UserID)
	}
}

func TestExperienceCreate_TagsRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	created, err := svc.Create(dto.ExperienceCreate{
		Company:    "Acme",
		Position:   "SWE",
		Summary:    "s",
		Content:    "c",
		Difficulty: 3.5,
		Tags:       []string{"go", "backend"},
	}, "13800138000")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if len(created.Tags) != 2 || created.Tags[0] != "go" || created.Tags[1] != "backend" {
		t.Fatalf("tags = %#v", created.Tags)
	}
	if created.Difficulty != 3.5 {
		t.Fatalf("difficulty = %v", created.Difficulty)
	}
}

func TestExperienceCreate_OwnerNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	_, err := svc.Create(dto.ExperienceCreate{
		Company:  "Acme",
		Position: "SWE",
		Summary:  "s",
		Content:  "c",
	}, "13899999999")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown owner, got %v", err)
	}
}

func TestExperienceCreate_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	cases := []struct {
		name  string
		input dto.ExperienceCreate
	}{
		{"missing company", dto.ExperienceCreate{Position: "SWE", Summary: "s", Content: "c"}},
		{"missing summary", dto.ExperienceCreate{Company: "Acme", Position: "SWE", Content: "c"}},
		{"difficulty too high", dto.ExperienceCreate{Company: "Acme", Position: "SWE", Summary: "s", Content: "c", Difficulty: 5.5}},
		{"negative difficulty", dto.ExperienceCreate{Company: "Acme", Position: "SWE", Summary: "s", Content: "c", Difficulty: -1}},
	}

	for _, tc := range cases {
		if _, err := svc.Create(tc.input, "13800138000"); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestExperienceUpdate_NonOwnerGetsNotFound(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestExperienceService(t)

	created, err := svc.Create(dto.ExperienceCreate{
		Company: "Acme", Position: "SWE", Summary: "s", Content: "c",
	}, "13800138000")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	company := "Evil Corp"
	_, err = svc.Update(created.ID, dto.ExperienceUpdate{Company: &company}, "13800138001")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}

	// state untouched
	if repo.items[created.ID].Company != "Acme" {
		t.Fatalf("record mutated by non-owner")
	}
}

func TestExperienceUpdate_PartialPatch(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	created, err := svc.Create(dto.ExperienceCreate{
		Company: "Acme", Position: "SWE", Summary: "s", Content: "c",
		Tags: []string{"go"},
	}, "13800138000")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	position := "Senior SWE"
	updated, err := svc.Update(created.ID, dto.ExperienceUpdate{Position: &position}, "13800138000")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Position != "Senior SWE" {
		t.Fatalf("position = %q", updated.Position)
	}
	// everything else untouched, including tags
	if updated.Company != "Acme" || updated.Summary != "s" {
		t.Fatalf("unset fields changed: %+v", updated)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "go" {
		t.Fatalf("tags changed: %#v", updated.Tags)
	}
}

func TestExperienceUpdate_MissingRecord(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	company := "Acme"
	_, err := svc.Update(42, dto.ExperienceUpdate{Company: &company}, "13800138000")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExperienceDelete_OwnerGate(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestExperienceService(t)

	created, err := svc.Create(dto.ExperienceCreate{
		Company: "Acme", Position: "SWE", Summary: "s", Content: "c",
	}, "13800138000")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(created.ID, "13800138001"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner delete, got %v", err)
	}
	if _, ok := repo.items[created.ID]; !ok {
		t.Fatalf("record deleted by non-owner")
	}

	if err := svc.Delete(created.ID, "13800138000"); err != nil {
		t.Fatalf("owner delete error: %v", err)
	}
	if _, ok := repo.items[created.ID]; ok {
		t.Fatalf("record still present after owner delete")
	}
}

func TestExperienceList_PageValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	cases := []dto.ExperienceQuery{
		{Skip: -1, Limit: 10},
		{Skip: 0, Limit: 0},
		{Skip: 0, Limit: 101},
	}
	for _, q := range cases {
		if _, err := svc.List(q); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("query %+v: expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestExperienceSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestExperienceService(t)

	if _, err := svc.Search("  ", 0, 10); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank query, got %v", err)
	}
}
