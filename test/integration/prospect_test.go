package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"trustfluence_backend/internal/models"
	"trustfluence_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProspectSubmit_Success - публичная подача заявки
func TestProspectSubmit_Success(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	body := map[string]interface{}{
		"full_name":        "Jane Prospect",
		"email":            "jane.prospect@test.com",
		"company":          "PR Agency",
		"title":            "Senior PR Manager",
		"years_experience": 7,
		"linkedin_url":     "https://linkedin.com/in/janeprospect",
	}
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", body)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"pending"`)
	assert.Contains(t, bodyStr, "jane.prospect@test.com")
}

// TestProspectSubmit_DuplicateEmail - повторная заявка на тот же email отклоняется
func TestProspectSubmit_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	body := map[string]interface{}{
		"full_name":        "First Applicant",
		"email":            "dup.prospect@test.com",
		"company":          "Agency One",
		"title":            "PR Lead",
		"years_experience": 3,
	}
	res, _ := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body["full_name"] = "Second Applicant"
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", body)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")
}

// TestProspectApprove_FullFlow - одобрение создает аккаунт, повторное дает конфликт
func TestProspectApprove_FullFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	email := fmt.Sprintf("approve_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", map[string]interface{}{
		"full_name":        "Approve Me",
		"email":            email,
		"company":          "Agency",
		"title":            "PR Manager",
		"years_experience": 5,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var prospect struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &prospect))

	// Одобрение возвращает временный пароль
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/prospects/"+prospect.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var approved struct {
		UserID       string `json:"user_id"`
		Email        string `json:"email"`
		TempPassword string `json:"temp_password"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &approved))
	assert.Equal(t, email, approved.Email)
	assert.NotEmpty(t, approved.TempPassword)

	// Создан ровно один аккаунт, привязанный к заявке
	var count int64
	require.NoError(t, tx.Model(&models.User{}).Where("prospect_user_id = ?", prospect.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Логин временным паролем требует смены пароля
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": approved.TempPassword,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"must_change_password":true`)

	// Повторное одобрение - конфликт статуса
	res, bodyStr = ts.SendRequest(t, tx, "POST", "/api/v1/admin/prospects/"+prospect.ID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already been reviewed")
}

// TestProspectReject_NonPendingIsNoOp - reject рассмотренной заявки молча игнорируется
func TestProspectReject_NonPendingIsNoOp(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

	email := fmt.Sprintf("reject_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, tx, "POST", "/api/v1/prospects", "", map[string]interface{}{
		"full_name":        "Reject Me",
		"email":            email,
		"company":          "Agency",
		"title":            "PR Manager",
		"years_experience": 2,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var prospect struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &prospect))

	res, _ = ts.SendRequest(t, tx, "POST", "/api/v1/admin/prospects/"+prospect.ID+"/reject", adminToken, map[string]interface{}{
		"reason": "Not a PR professional",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Повторный reject - no-op, но тоже 200
	res, _ = ts.SendRequest(t, tx, "POST", "/api/v1/admin/prospects/"+prospect.ID+"/reject", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Статус остался rejected, причина из первого запроса
	var stored models.ProspectUser
	require.NoError(t, tx.First(&stored, "id = ?", prospect.ID).Error)
	assert.Equal(t, models.ProspectStatusRejected, stored.Status)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "Not a PR professional", *stored.RejectionReason)
}

// TestProspectList_RequiresAdmin - список заявок закрыт от обычных пользователей
func TestProspectList_RequiresAdmin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)

	res, _ := ts.SendRequest(t, tx, "GET", "/api/v1/admin/prospects", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
