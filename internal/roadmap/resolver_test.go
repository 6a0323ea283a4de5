package roadmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forEachCombination(t *testing.T, fn func(t *testing.T, s Stage, d DataSource, e Experience, b Budget)) {
	t.Helper()
	count := 0
	for _, s := range Stages() {
		for _, d := range DataSources() {
			for _, e := range Experiences() {
				for _, b := range Budgets() {
					count++
					fn(t, s, d, e, b)
				}
			}
		}
	}
	require.Equal(t, 54, count)
}

func TestResolveAllCombinationsHaveFourNonEmptyBlocks(t *testing.T) {
	wantTitles := []string{BlockDecisions, BlockData, BlockSkills, BlockBudget}
	forEachCombination(t, func(t *testing.T, s Stage, d DataSource, e Experience, b Budget) {
		summary := Resolve(s, d, e, b)
		require.Len(t, summary.Blocks, 4, "%s/%s/%s/%s", s, d, e, b)
		for i, block := range summary.Blocks {
			assert.Equal(t, wantTitles[i], block.Title)
			assert.NotEmpty(t, block.Items, "block %q empty for %s/%s/%s/%s", block.Title, s, d, e, b)
			for _, item := range block.Items {
				assert.NotEmpty(t, item)
			}
		}
		assert.NotEmpty(t, summary.Headline)
		assert.NotEmpty(t, summary.Timeline.Focus)
	})
}

func TestResolveDeterminism(t *testing.T) {
	forEachCombination(t, func(t *testing.T, s Stage, d DataSource, e Experience, b Budget) {
		first := Resolve(s, d, e, b)
		second := Resolve(s, d, e, b)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("expected identical summaries (-first +second):\n%s", diff)
		}
	})
}

func TestResolveReturnsFreshSlices(t *testing.T) {
	first := Resolve(StageIdea, DataNone, ExperienceBeginner, BudgetLean)
	first.Blocks[0].Items[0] = "tampered"
	first.Blocks = first.Blocks[:1]

	second := Resolve(StageIdea, DataNone, ExperienceBeginner, BudgetLean)
	require.Len(t, second.Blocks, 4)
	assert.NotEqual(t, "tampered", second.Blocks[0].Items[0])
}

func TestTimelineSprintCounts(t *testing.T) {
	allowed := map[int]bool{2: true, 4: true, 6: true}
	prev := 0
	for _, s := range Stages() {
		got := Resolve(s, DataNone, ExperienceBeginner, BudgetLean).Timeline.SprintCount
		assert.True(t, allowed[got], "unexpected sprint count %d for %s", got, s)
		assert.Greater(t, got, prev, "sprint count must increase at %s", s)
		prev = got
	}
}

func TestHeadlineDependsOnlyOnStage(t *testing.T) {
	headlines := make(map[Stage]string)
	forEachCombination(t, func(t *testing.T, s Stage, d DataSource, e Experience, b Budget) {
		got := Resolve(s, d, e, b).Headline
		if want, ok := headlines[s]; ok {
			assert.Equal(t, want, got)
			return
		}
		headlines[s] = got
	})

	distinct := make(map[string]bool)
	for _, h := range headlines {
		distinct[h] = true
	}
	assert.Len(t, distinct, 3)
}

func TestResolveIdeaNoneBeginnerLean(t *testing.T) {
	got := Resolve(StageIdea, DataNone, ExperienceBeginner, BudgetLean)

	assert.Equal(t, "Priority: clarify your promise and build your data foundation.", got.Headline)
	assert.Equal(t, Timeline{SprintCount: 2, Focus: "Validate usage and collect real data."}, got.Timeline)
	assert.Equal(t, []string{
		"Plan a collection step: forms, scraping or partnerships, in compliance with GDPR.",
		"Design a target data schema to ease annotation and governance.",
	}, got.Blocks[1].Items)
}

func TestResolveProductionAPIAdvancedPremium(t *testing.T) {
	got := Resolve(StageProduction, DataExternalAPI, ExperienceAdvanced, BudgetPremium)

	assert.Equal(t, 6, got.Timeline.SprintCount)
	assert.Equal(t, skillsAdvice(ExperienceAdvanced), got.Blocks[2].Items)
	assert.Equal(t, budgetAdvice(BudgetPremium), got.Blocks[3].Items)
	assert.Len(t, got.Blocks[2].Items, 2)
	assert.Len(t, got.Blocks[3].Items, 2)
}

func TestBlocksFollowTheirOwnDimension(t *testing.T) {
	forEachCombination(t, func(t *testing.T, s Stage, d DataSource, e Experience, b Budget) {
		got := Resolve(s, d, e, b)
		assert.Equal(t, decisionAdvice(s), got.Blocks[0].Items)
		assert.Equal(t, dataAdvice(d), got.Blocks[1].Items)
		assert.Equal(t, skillsAdvice(e), got.Blocks[2].Items)
		assert.Equal(t, budgetAdvice(b), got.Blocks[3].Items)
	})
}
