package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/FijacksProp/portfolio/database"
	"github.com/FijacksProp/portfolio/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Contact{}, &models.Project{}, &models.Skill{}))

	return database.New(db)
}

func testRenderer() Renderer {
	return NewJSONRenderer(zerolog.Nop())
}

// decodeFlashCookie extracts the flash messages queued on a response, or nil
// when no flash cookie was set.
func decodeFlashCookie(t *testing.T, resp *http.Response) []Flash {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name != flashCookieName || cookie.MaxAge < 0 {
			continue
		}
		decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
		require.NoError(t, err)

		var flashes []Flash
		require.NoError(t, json.Unmarshal(decoded, &flashes))
		return flashes
	}
	return nil
}
