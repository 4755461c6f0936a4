package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/blues/decentrafund/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testStats = []model.Stat{
	{Key: model.StatProjectsFunded, Value: "1,200+", Label: "Projects Funded"},
	{Key: model.StatRaised, Value: "$5.8M", Label: "Raised"},
	{Key: model.StatBackers, Value: "85,000+", Label: "Backers"},
	{Key: model.StatSuccessRate, Value: "92%", Label: "Success Rate"},
}

func TestGetStatsWithoutDatabase(t *testing.T) {
	stats := NewStatsLogic(nil, testStats).GetStats(context.Background(), language.AmericanEnglish)
	assert.Equal(t, testStats, stats)

	stats[0].Value = "changed"
	assert.Equal(t, "1,200+", testStats[0].Value)
}

func TestApplyCampaignCounts(t *testing.T) {
	p := message.NewPrinter(language.AmericanEnglish)
	stats := ApplyCampaignCounts(testStats, CampaignCounts{Funded: 1234, Failed: 266, Backers: 85012}, p)

	assert.Equal(t, "1,234", stats[0].Value)
	assert.Equal(t, "$5.8M", stats[1].Value)
	assert.Equal(t, "85,012", stats[2].Value)
	assert.Equal(t, "82%", stats[3].Value)
	assert.Equal(t, "1,200+", testStats[0].Value)
}

func TestApplyCampaignCountsNoFinishedCampaigns(t *testing.T) {
	p := message.NewPrinter(language.AmericanEnglish)
	stats := ApplyCampaignCounts(testStats, CampaignCounts{}, p)

	assert.Equal(t, "0", stats[0].Value)
	assert.Equal(t, "92%", stats[3].Value)
}

const campaignCountsQuery = `SELECT COUNT\(\*\) FILTER \(WHERE status = \$1\) AS funded, ` +
	`COUNT\(\*\) FILTER \(WHERE status = \$2\) AS failed, ` +
	`COALESCE\(SUM\(backers\), 0\) AS backers FROM campaign`

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetStatsFromDatabase(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(campaignCountsQuery).
		WithArgs("success", "failed").
		WillReturnRows(sqlmock.NewRows([]string{"funded", "failed", "backers"}).AddRow(1234, 266, 85012))

	stats := NewStatsLogic(db, testStats).GetStats(context.Background(), language.AmericanEnglish)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "1,234", stats[0].Value)
	assert.Equal(t, "$5.8M", stats[1].Value)
	assert.Equal(t, "85,012", stats[2].Value)
	assert.Equal(t, "82%", stats[3].Value)
}

func TestGetStatsDatabaseErrorFallsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(campaignCountsQuery).WillReturnError(errors.New("relation \"campaign\" does not exist"))

	stats := NewStatsLogic(db, testStats).GetStats(context.Background(), language.AmericanEnglish)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, testStats, stats)
}
