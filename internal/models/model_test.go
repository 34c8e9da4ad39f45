package models_test

import (
	"time"

	"github.com/budget-rule/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
		},
	}

	err := model.AfterFind(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestBeforeCreateSetsID() {
	b := models.MonthlyBudget{OwnerID: "user-a", Year: 2025, Month: 1}
	suite.Require().Nil(models.DB.Create(&b).Error)
	suite.Assert().NotEqual(uuid.Nil, b.ID)
}
