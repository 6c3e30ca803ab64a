package services

import (
	"testing"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/internal/repositories"
	"trustfluence_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		name      string
		followers []int64
		want      float64
	}{
		{"no handles", nil, 0},
		{"small account", []int64{50_000}, 4.5},
		{"mid tier", []int64{500_000}, 3.5},
		{"mega account", []int64{2_000_000}, 2.5},
		{"boundary 100k stays top tier", []int64{100_000}, 4.5},
		{"boundary 1m stays mid tier", []int64{1_000_000}, 3.5},
		{"average across platforms", []int64{1_900_000, 100_000}, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handles := make([]models.InfluencerHandle, 0, len(tt.followers))
			for _, f := range tt.followers {
				handles = append(handles, models.InfluencerHandle{FollowerCount: f})
			}
			assert.Equal(t, tt.want, engagementRate(handles))
		})
	}
}

func TestCategoryAverages(t *testing.T) {
	t.Run("empty reviews give zeros", func(t *testing.T) {
		assert.Equal(t, dto.CategoryRatings{}, categoryAverages(nil))
	})

	t.Run("averages rounded to one decimal", func(t *testing.T) {
		reviews := []models.Review{
			{Professionalism: 5, Communication: 5, ContentQuality: 5, ROI: 5, Reliability: 5, OverallRating: 5.0},
			{Professionalism: 3, Communication: 4, ContentQuality: 2, ROI: 3, Reliability: 4, OverallRating: 3.2},
		}

		got := categoryAverages(reviews)
		assert.Equal(t, 4.0, got.Professionalism)
		assert.Equal(t, 4.5, got.Communication)
		assert.Equal(t, 3.5, got.ContentQuality)
		assert.Equal(t, 4.0, got.ROI)
		assert.Equal(t, 4.5, got.Reliability)
		assert.Equal(t, 4.1, got.Overall)
	})
}

func newSearchFixture() ([]models.Influencer, []models.Review) {
	low := models.Influencer{Name: "Low"}
	low.ID = "low"
	exact := models.Influencer{Name: "Exact"}
	exact.ID = "exact"
	high := models.Influencer{Name: "High"}
	high.ID = "high"
	unrated := models.Influencer{Name: "Unrated"}
	unrated.ID = "unrated"

	reviews := []models.Review{
		{InfluencerID: "low", OverallRating: 3.0},
		{InfluencerID: "exact", OverallRating: 4.0},
		{InfluencerID: "high", OverallRating: 5.0},
	}

	return []models.Influencer{low, exact, high, unrated}, reviews
}

func TestInfluencerSearch_MinRatingFilter(t *testing.T) {
	influencers, reviews := newSearchFixture()

	svc := NewInfluencerService(
		&mockInfluencerRepo{
			search: func(criteria repositories.InfluencerSearchCriteria) ([]models.Influencer, int64, error) {
				// Страница каталога всегда фиксированного размера
				assert.Equal(t, searchPageSize, criteria.PageSize)
				return influencers, int64(len(influencers)), nil
			},
		},
		&mockReviewRepo{
			findByInfluencerIDs: func(ids []string) ([]models.Review, error) { return reviews, nil },
		},
		&mockViewRepo{},
	)

	resp, err := svc.Search(nil, &dto.InfluencerSearchQuery{MinRating: 4.0})
	require.NoError(t, err)

	names := make([]string, 0, len(resp.Influencers))
	for _, s := range resp.Influencers {
		names = append(names, s.Name)
	}

	// Порог включительный; без отзывов средний 0 - ниже порога
	assert.Equal(t, []string{"Exact", "High"}, names)
	// Total остается от выборки страницы, не от пост-фильтра
	assert.EqualValues(t, 4, resp.Total)
}

func TestInfluencerSearch_NoFilterKeepsUnrated(t *testing.T) {
	influencers, reviews := newSearchFixture()

	svc := NewInfluencerService(
		&mockInfluencerRepo{
			search: func(criteria repositories.InfluencerSearchCriteria) ([]models.Influencer, int64, error) {
				assert.Equal(t, 1, criteria.Page)
				return influencers, int64(len(influencers)), nil
			},
		},
		&mockReviewRepo{
			findByInfluencerIDs: func(ids []string) ([]models.Review, error) { return reviews, nil },
		},
		&mockViewRepo{},
	)

	resp, err := svc.Search(nil, &dto.InfluencerSearchQuery{Page: 0})
	require.NoError(t, err)
	assert.Len(t, resp.Influencers, 4)

	// У неоцененного инфлюенсера нулевой рейтинг и счетчик
	last := resp.Influencers[3]
	assert.Equal(t, "Unrated", last.Name)
	assert.Zero(t, last.AverageRating)
	assert.Zero(t, last.TotalReviews)
}

func TestInfluencerGetDetail_ViewFailureDoesNotBreak(t *testing.T) {
	influencer := &models.Influencer{Name: "Resilient"}
	influencer.ID = "inf-1"

	svc := NewInfluencerService(
		&mockInfluencerRepo{
			findByIDWithReviews: func(id string) (*models.Influencer, error) { return influencer, nil },
		},
		&mockReviewRepo{},
		&mockViewRepo{
			upsert: func(userID, influencerID string) error {
				return assert.AnError
			},
		},
	)

	resp, err := svc.GetDetail(nil, "inf-1", "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, "Resilient", resp.Name)
}

func TestInfluencerGetDetail_RecordsView(t *testing.T) {
	influencer := &models.Influencer{Name: "Watched"}
	influencer.ID = "inf-1"

	var recordedUser, recordedInfluencer string
	svc := NewInfluencerService(
		&mockInfluencerRepo{
			findByIDWithReviews: func(id string) (*models.Influencer, error) { return influencer, nil },
		},
		&mockReviewRepo{},
		&mockViewRepo{
			upsert: func(userID, influencerID string) error {
				recordedUser = userID
				recordedInfluencer = influencerID
				return nil
			},
		},
	)

	_, err := svc.GetDetail(nil, "inf-1", "viewer-1")
	require.NoError(t, err)
	assert.Equal(t, "viewer-1", recordedUser)
	assert.Equal(t, "inf-1", recordedInfluencer)
}
