package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"trustfluence_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlatformFlow - сквозной сценарий: заявка -> одобрение -> вход ->
// смена пароля -> отзыв -> карточка инфлюенсера с агрегатами.
func TestPlatformFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	influencer := helpers.CreateTestInfluencer(t, tx, "Flow Star", "lifestyle", 90_000)

	// 1. Заявка
	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", map[string]interface{}{
		"full_name":        "Flow Applicant",
		"email":            email,
		"company":          "Flow PR",
		"title":            "Account Director",
		"years_experience": 10,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var prospect struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &prospect))

	// 2. Одобрение админом
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/prospects/"+prospect.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var approved struct {
		TempPassword string `json:"temp_password"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &approved))

	// 3. Вход временным паролем
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": approved.TempPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var login struct {
		AccessToken        string `json:"access_token"`
		MustChangePassword bool   `json:"must_change_password"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))
	assert.True(t, login.MustChangePassword)

	// 4. Установка постоянного пароля
	res, _ = ts.SendRequest(t, tx, "POST", "/api/v1/account/setup", login.AccessToken, map[string]interface{}{
		"password": "flow-permanent-pass-1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "flow-permanent-pass-1",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &login))

	// 5. Отзыв: mean([5,5,5,4,5]) = 4.8
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/reviews", login.AccessToken, map[string]interface{}{
		"influencer_id":    influencer.ID,
		"professionalism":  5,
		"communication":    5,
		"content_quality":  5,
		"roi":              4,
		"reliability":      5,
		"pros":             "Audience fit was perfect",
		"cons":             "Scheduling took a while",
		"advice":           "Plan a month ahead",
		"would_work_again": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	// 6. Карточка: один отзыв, overall совпадает
	res, bodyStr = ts.SendRequest(t, tx, "GET", "/api/v1/influencers/"+influencer.ID, login.AccessToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var detail struct {
		Ratings struct {
			Overall float64 `json:"overall"`
		} `json:"ratings"`
		TotalReviews   int64   `json:"total_reviews"`
		EngagementRate float64 `json:"engagement_rate"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &detail))
	assert.EqualValues(t, 1, detail.TotalReviews)
	assert.Equal(t, 4.8, detail.Ratings.Overall)
	// 90K подписчиков - верхний тир вовлеченности
	assert.Equal(t, 4.5, detail.EngagementRate)
}
