package validator

import (
	"testing"

	"trustfluence_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestValidate_CreateReviewRequest(t *testing.T) {
	v := New()

	valid := dto.CreateReviewRequest{
		InfluencerID:    "2b7f3f2a-1111-4222-8333-444455556666",
		Professionalism: 5,
		Communication:   4,
		ContentQuality:  3,
		ROI:             2,
		Reliability:     1,
		Pros:            "p",
		Cons:            "c",
		Advice:          "a",
		WouldWorkAgain:  boolPtr(false),
	}
	assert.NoError(t, v.Validate(valid))

	t.Run("rating out of range", func(t *testing.T) {
		bad := valid
		bad.ROI = 6
		err := v.Validate(bad)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		// Ошибка привязана к json-имени поля
		assert.Contains(t, vErr.Errors, "roi")
	})

	t.Run("missing would_work_again", func(t *testing.T) {
		bad := valid
		bad.WouldWorkAgain = nil
		err := v.Validate(bad)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "would_work_again")
	})
}

func TestValidate_ReportReasons(t *testing.T) {
	v := New()

	t.Run("known reasons pass", func(t *testing.T) {
		req := dto.CreateReportRequest{Reasons: []string{"spam", "offensive", "other"}}
		assert.NoError(t, v.Validate(req))
	})

	t.Run("unknown reason fails", func(t *testing.T) {
		req := dto.CreateReportRequest{Reasons: []string{"spam", "boring"}}
		err := v.Validate(req)
		require.Error(t, err)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors["reasons"], "unknown report reason")
	})

	t.Run("empty reasons fail", func(t *testing.T) {
		req := dto.CreateReportRequest{Reasons: []string{}}
		assert.Error(t, v.Validate(req))
	})
}

func TestValidate_ReportStatus(t *testing.T) {
	v := New()

	for _, status := range []string{"open", "investigating", "closed"} {
		assert.NoError(t, v.Validate(dto.UpdateReportStatusRequest{Status: status}))
	}

	assert.Error(t, v.Validate(dto.UpdateReportStatusRequest{Status: "resolved"}))
}

func TestValidate_Platform(t *testing.T) {
	v := New()

	valid := dto.HandleInput{Platform: "instagram", Username: "someone"}
	assert.NoError(t, v.Validate(valid))

	invalid := dto.HandleInput{Platform: "myspace", Username: "someone"}
	err := v.Validate(invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "platform")
}

func TestValidate_SubmitProspectRequest(t *testing.T) {
	v := New()

	valid := dto.SubmitProspectRequest{
		FullName:        "Jane Doe",
		Email:           "jane@agency.com",
		Company:         "Agency",
		Title:           "PR Manager",
		YearsExperience: 5,
	}
	assert.NoError(t, v.Validate(valid))

	t.Run("bad email", func(t *testing.T) {
		bad := valid
		bad.Email = "not-an-email"
		assert.Error(t, v.Validate(bad))
	})

	t.Run("bad linkedin url", func(t *testing.T) {
		bad := valid
		bad.LinkedInURL = "not a url"
		assert.Error(t, v.Validate(bad))
	})
}
