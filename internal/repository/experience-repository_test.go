package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/interview-express/experience_service/internal/common"
	"github.com/interview-express/experience_service/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedExperiences(t *testing.T, db *gorm.DB, n int) []domain.Experience {
	t.Helper()

	user := domain.User{Phone: "13800138000", Username: "138XXXXX8000", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	base := time.Now().Add(-time.Hour)
	out := make([]domain.Experience, 0, n)
	for i := 0; i < n; i++ {
		exp := domain.Experience{
			Company:  fmt.Sprintf("Company-%d", i),
			Position: fmt.Sprintf("Position-%d", i),
			Summary:  fmt.Sprintf("summary %d", i),
			Content:  fmt.Sprintf("content %d", i),
			Tags:     `["go","backend"]`,
			UserID:   user.ID,
			// explicit timestamps so ordering is deterministic
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&exp).Error)
		out = append(out, exp)
	}
	return out
}

func TestExperienceRepository_ListOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepository(db)
	seedExperiences(t, db, 5)

	items, err := repo.List(ExperienceFilter{Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 5)

	// newest first
	for i := 1; i < len(items); i++ {
		require.False(t, items[i-1].CreatedAt.Before(items[i].CreatedAt),
			"items out of order at %d", i)
	}
	require.Equal(t, "Company-4", items[0].Company)
}

func TestExperienceRepository_PaginationDisjoint(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepository(db)
	seedExperiences(t, db, 6)

	page1, err := repo.List(ExperienceFilter{Skip: 0, Limit: 3})
	require.NoError(t, err)
	page2, err := repo.List(ExperienceFilter{Skip: 3, Limit: 3})
	require.NoError(t, err)

	require.Len(t, page1, 3)
	require.Len(t, page2, 3)

	seen := map[uint]bool{}
	for _, e := range page1 {
		seen[e.ID] = true
	}
	for _, e := range page2 {
		require.False(t, seen[e.ID], "experience %d appears on both pages", e.ID)
	}

	// order continues across the page boundary
	require.True(t, !page1[2].CreatedAt.Before(page2[0].CreatedAt))
}

func TestExperienceRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepository(db)

	user := domain.User{Phone: "13800138001", Username: "u", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	for _, e := range []domain.Experience{
		{Company: "Acme Corp", Position: "SWE", Summary: "s", Content: "c", Tags: `["go"]`, UserID: user.ID},
		{Company: "Globex", Position: "SRE", Summary: "s", Content: "c", Tags: `["rust"]`, UserID: user.ID},
		{Company: "Acme Labs", Position: "PM", Summary: "s", Content: "c", Tags: `["go","infra"]`, UserID: user.ID},
	} {
		exp := e
		require.NoError(t, db.Create(&exp).Error)
	}

	items, err := repo.List(ExperienceFilter{Company: "Acme", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 2)

	items, err = repo.List(ExperienceFilter{Company: "Acme", Position: "SWE", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Acme Corp", items[0].Company)

	// tag filter is substring matching on the stored blob
	items, err = repo.List(ExperienceFilter{Tags: []string{"go", "infra"}, Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Acme Labs", items[0].Company)
}

func TestExperienceRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepository(db)

	user := domain.User{Phone: "13800138002", Username: "u", IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	for _, e := range []domain.Experience{
		{Company: "Acme", Position: "SWE", Summary: "great team", Content: "c", Tags: `[]`, UserID: user.ID},
		{Company: "Globex", Position: "SRE", Summary: "s", Content: "asked about acme rivalry", Tags: `[]`, UserID: user.ID},
		{Company: "Initech", Position: "QA", Summary: "s", Content: "c", Tags: `["acme-stack"]`, UserID: user.ID},
		{Company: "Hooli", Position: "PM", Summary: "s", Content: "c", Tags: `[]`, UserID: user.ID},
	} {
		exp := e
		require.NoError(t, db.Create(&exp).Error)
	}

	// matches company, content and tag blob, OR-combined
	items, err := repo.Search("cme", 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
}

func TestExperienceRepository_HardDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewExperienceRepository(db)
	seeded := seedExperiences(t, db, 1)

	require.NoError(t, repo.Delete(&seeded[0]))

	_, err := repo.FindByID(seeded[0].ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
