package policy

import (
	"testing"

	"github.com/Tomas-vilte/ReadyMate/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseCriteria() []models.Criterion {
	return []models.Criterion{
		{ID: "readme-exists", Title: "README presente", Pillar: models.PillarDocs, Level: 1, Scope: models.ScopeRepo, Impact: models.RatingHigh, Effort: models.RatingLow},
		{ID: "ci-workflow", Title: "Workflow de CI", Pillar: models.PillarAutomation, Level: 2, Scope: models.ScopeRepo, Impact: models.RatingHigh, Effort: models.RatingMedium},
		{ID: "tests-present", Title: "Tests presentes", Pillar: models.PillarTesting, Level: 2, Scope: models.ScopeApp, Impact: models.RatingHigh, Effort: models.RatingMedium},
	}
}

func baseExtras() []models.Extra {
	return []models.Extra{
		{ID: "license-file", Title: "Licencia"},
		{ID: "changelog-file", Title: "Changelog"},
	}
}

func TestResolve(t *testing.T) {
	t.Run("should return the base registry unchanged with an empty chain", func(t *testing.T) {
		// Act
		chain := Resolve(baseCriteria(), baseExtras(), nil)

		// Assert
		assert.Len(t, chain.Criteria, 3)
		assert.Len(t, chain.Extras, 2)
		assert.Empty(t, chain.Chain)
		assert.Equal(t, models.DefaultPassRate, chain.Thresholds.PassRate)
	})

	t.Run("should not mutate its inputs and resolve the same chain twice", func(t *testing.T) {
		// Arrange
		criteria := baseCriteria()
		extras := baseExtras()
		newTitle := "Otro título"
		policies := []models.Policy{{
			Name: "mutator",
			Criteria: models.CriteriaDelta{
				Disable:  []string{"ci-workflow"},
				Override: map[string]models.CriterionPatch{"readme-exists": {Title: &newTitle}},
			},
		}}

		// Act
		first := Resolve(criteria, extras, policies)
		second := Resolve(criteria, extras, policies)

		// Assert
		assert.Equal(t, "README presente", criteria[0].Title)
		assert.Len(t, criteria, 3)
		assert.Equal(t, first.Criteria, second.Criteria)
		assert.Equal(t, first.Thresholds, second.Thresholds)
	})

	t.Run("should remove disabled criteria preserving order", func(t *testing.T) {
		// Arrange
		policies := []models.Policy{{
			Name:     "minimal",
			Criteria: models.CriteriaDelta{Disable: []string{"ci-workflow"}},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Criteria, 2)
		assert.Equal(t, "readme-exists", chain.Criteria[0].ID)
		assert.Equal(t, "tests-present", chain.Criteria[1].ID)
	})

	t.Run("should ignore disables for unknown ids", func(t *testing.T) {
		// Arrange
		policies := []models.Policy{{
			Name:     "noop",
			Criteria: models.CriteriaDelta{Disable: []string{"no-such-criterion"}},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		assert.Len(t, chain.Criteria, 3)
	})

	t.Run("should apply override patches without touching id or other criteria", func(t *testing.T) {
		// Arrange
		newLevel := 4
		newImpact := models.RatingLow
		policies := []models.Policy{{
			Name: "tuning",
			Criteria: models.CriteriaDelta{
				Override: map[string]models.CriterionPatch{
					"ci-workflow": {Level: &newLevel, Impact: &newImpact},
				},
			},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Criteria, 3)
		patched := chain.Criteria[1]
		assert.Equal(t, "ci-workflow", patched.ID)
		assert.Equal(t, 4, patched.Level)
		assert.Equal(t, models.RatingLow, patched.Impact)
		assert.Equal(t, "Workflow de CI", patched.Title)
		assert.Equal(t, 1, chain.Criteria[0].Level)
	})

	t.Run("should treat overrides for missing ids as no-ops", func(t *testing.T) {
		// Arrange
		title := "fantasma"
		policies := []models.Policy{{
			Name: "ghost",
			Criteria: models.CriteriaDelta{
				Override: map[string]models.CriterionPatch{"missing": {Title: &title}},
			},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		assert.Equal(t, baseCriteria(), chain.Criteria)
	})

	t.Run("should append new criteria and replace same-id criteria in place", func(t *testing.T) {
		// Arrange
		policies := []models.Policy{{
			Name: "pack",
			Criteria: models.CriteriaDelta{
				Add: []models.Criterion{
					{ID: "new-check", Title: "Nuevo", Pillar: models.PillarSecurity, Level: 3, Scope: models.ScopeRepo, Impact: models.RatingMedium, Effort: models.RatingLow},
					{ID: "ci-workflow", Title: "CI reescrito", Pillar: models.PillarAutomation, Level: 1, Scope: models.ScopeRepo, Impact: models.RatingHigh, Effort: models.RatingLow},
				},
			},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Criteria, 4)
		assert.Equal(t, "CI reescrito", chain.Criteria[1].Title)
		assert.Equal(t, 1, chain.Criteria[1].Level)
		assert.Equal(t, "new-check", chain.Criteria[3].ID)
	})

	t.Run("should let a later policy re-introduce a criterion disabled earlier", func(t *testing.T) {
		// Arrange
		policies := []models.Policy{
			{
				Name:     "minimal",
				Criteria: models.CriteriaDelta{Disable: []string{"ci-workflow"}},
			},
			{
				Name: "restore",
				Criteria: models.CriteriaDelta{
					Add: []models.Criterion{
						{ID: "ci-workflow", Title: "CI de vuelta", Pillar: models.PillarAutomation, Level: 2, Scope: models.ScopeRepo, Impact: models.RatingHigh, Effort: models.RatingMedium},
					},
				},
			},
		}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Criteria, 3)
		assert.Equal(t, "ci-workflow", chain.Criteria[2].ID)
		assert.Equal(t, "CI de vuelta", chain.Criteria[2].Title)
		assert.Equal(t, []string{"minimal", "restore"}, chain.Chain)
	})

	t.Run("should apply disable before add within the same policy", func(t *testing.T) {
		// Arrange: disable y add del mismo id en una sola política. El add se
		// aplica después, así que el criterio queda presente con la nueva
		// definición.
		policies := []models.Policy{{
			Name: "replace",
			Criteria: models.CriteriaDelta{
				Disable: []string{"readme-exists"},
				Add: []models.Criterion{
					{ID: "readme-exists", Title: "README estricto", Pillar: models.PillarDocs, Level: 2, Scope: models.ScopeRepo, Impact: models.RatingHigh, Effort: models.RatingLow},
				},
			},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Criteria, 3)
		last := chain.Criteria[2]
		assert.Equal(t, "readme-exists", last.ID)
		assert.Equal(t, "README estricto", last.Title)
	})

	t.Run("should let the last policy win on thresholds", func(t *testing.T) {
		// Arrange
		strict := 0.9
		lax := 0.5
		policies := []models.Policy{
			{Name: "strict", Thresholds: &models.ThresholdsSet{PassRate: &strict}},
			{Name: "neutral"},
			{Name: "lax", Thresholds: &models.ThresholdsSet{PassRate: &lax}},
		}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		assert.Equal(t, 0.5, chain.Thresholds.PassRate)
		assert.Equal(t, []string{"strict", "neutral", "lax"}, chain.Chain)
	})

	t.Run("should keep the default threshold when no policy sets it", func(t *testing.T) {
		// Act
		chain := Resolve(baseCriteria(), baseExtras(), []models.Policy{{Name: "neutral"}})

		// Assert
		assert.Equal(t, models.DefaultPassRate, chain.Thresholds.PassRate)
	})

	t.Run("should apply extras deltas with the same fold semantics", func(t *testing.T) {
		// Arrange
		newTitle := "Licencia OSS"
		policies := []models.Policy{{
			Name: "oss",
			Extras: models.ExtrasDelta{
				Disable:  []string{"changelog-file"},
				Override: map[string]models.ExtraPatch{"license-file": {Title: &newTitle}},
				Add:      []models.Extra{{ID: "funding-file", Title: "Funding"}},
			},
		}}

		// Act
		chain := Resolve(baseCriteria(), baseExtras(), policies)

		// Assert
		require.Len(t, chain.Extras, 2)
		assert.Equal(t, "Licencia OSS", chain.Extras[0].Title)
		assert.Equal(t, "funding-file", chain.Extras[1].ID)
	})
}
