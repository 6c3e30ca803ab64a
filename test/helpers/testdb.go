package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"trustfluence_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя в транзакции, хешируя сырой пароль
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	user.IsActive = true
	user.IsVerified = true

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, fullName, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		FullName:      fullName,
		Email:         email,
		PasswordHash:  password, // сырой пароль, CreateUser захеширует
		Role:          role,
		Company:       "Test Agency",
		Title:         "PR Manager",
		PublicProfile: false,
	}
	err := CreateUser(t, tx, user)
	require.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err, "Не удалось распарсить JSON")
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateAndLoginMember создает рядового пользователя с уникальным email
func CreateAndLoginMember(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("member_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Member", email, "password123", models.UserRoleUser)
}

// CreateAndLoginAdmin создает администратора с уникальным email
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Admin", email, "password123", models.UserRoleAdmin)
}

// CreateTestInfluencer создает инфлюенсера напрямую в транзакции
func CreateTestInfluencer(t *testing.T, tx *gorm.DB, name, niche string, followers int64) models.Influencer {
	influencer := models.Influencer{
		Name:       name,
		Niche:      niche,
		IsVerified: true,
		Handles: []models.InfluencerHandle{
			{
				Platform:      models.PlatformInstagram,
				Username:      strings.ToLower(strings.ReplaceAll(name, " ", "_")),
				FollowerCount: followers,
			},
		},
	}
	if err := tx.Create(&influencer).Error; err != nil {
		t.Fatalf("Не удалось создать тестового инфлюенсера: %v", err)
	}
	return influencer
}

// CreateTestReview создает отзыв напрямую в транзакции
func CreateTestReview(t *testing.T, tx *gorm.DB, influencerID, reviewerID string, ratings [5]int) models.Review {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	review := models.Review{
		InfluencerID:    influencerID,
		ReviewerID:      reviewerID,
		Professionalism: ratings[0],
		Communication:   ratings[1],
		ContentQuality:  ratings[2],
		ROI:             ratings[3],
		Reliability:     ratings[4],
		OverallRating:   float64(sum) / 5,
		Pros:            "Great collaboration",
		Cons:            "Slow replies",
		Advice:          "Book early",
		WouldWorkAgain:  true,
	}
	if err := tx.Create(&review).Error; err != nil {
		t.Fatalf("Не удалось создать тестовый отзыв: %v", err)
	}
	return review
}

// AssertJSONField проверяет значение поля в JSON-ответе
func AssertJSONField(t *testing.T, bodyStr, field string, expected interface{}) {
	var parsed map[string]interface{}
	err := json.Unmarshal([]byte(bodyStr), &parsed)
	require.NoError(t, err, "Ответ должен быть валидным JSON: "+bodyStr)
	assert.EqualValues(t, expected, parsed[field], "Поле %s не совпало. Ответ: %s", field, bodyStr)
}
