package seed

import (
	"testing"

	"yatube/internal/database"
	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(6, 25))

	var userCount, groupCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Group{}).Count(&groupCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(6), userCount)
	assert.Equal(t, int64(len(defaultGroups)), groupCount)
	assert.Equal(t, int64(25), postCount)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsAdmin)

	// Random follow picks must never violate the schema invariants.
	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = author_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	var total, distinct int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&total).Error)
	require.NoError(t, db.Raw(
		"SELECT COUNT(*) FROM (SELECT DISTINCT user_id, author_id FROM follows)").
		Scan(&distinct).Error)
	assert.Equal(t, total, distinct)
}

func TestSeederClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)
	require.NoError(t, s.Run(4, 10))
	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Group{}, &models.Post{},
		&models.Comment{}, &models.Follow{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T should be empty", model)
	}
}
