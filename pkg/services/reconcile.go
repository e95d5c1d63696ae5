package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dealscope/dealscope-engine/pkg/models"
)

// reconcile normalizes a parsed extraction payload in place so it can be
// persisted: every section exists, at least one company and one period are
// present, and every identifier is freshly generated server-side. Model
// output is never trusted for identity.
//
// It returns the canonical company and period ids that all statement rows
// now reference.
func reconcile(res *models.ExtractionResult, filename string, now time.Time) (companyID, periodID string) {
	res.EnsureSections()

	if len(res.Companies) == 0 {
		res.Companies = []models.Company{{
			CompanyName: companyNameFromFilename(filename),
		}}
	}
	for i := range res.Companies {
		res.Companies[i].CompanyID = uuid.New().String()
	}
	companyID = res.Companies[0].CompanyID

	if len(res.Periods) == 0 {
		year := now.Year()
		res.Periods = []models.Period{{
			PeriodStartDate: fmt.Sprintf("%d-01-01", year),
			PeriodEndDate:   fmt.Sprintf("%d-12-31", year),
			FiscalYear:      year,
			PeriodType:      "ANNUAL",
		}}
	}
	for i := range res.Periods {
		res.Periods[i].PeriodID = uuid.New().String()
	}
	periodID = res.Periods[0].PeriodID

	for _, t := range models.AllStatementTypes {
		for _, rec := range res.StatementRecords(t) {
			rec.SetIdentity(uuid.New().String(), companyID, periodID)
		}
	}

	return companyID, periodID
}

// companyNameFromFilename derives a display name when the model did not
// identify the company: extension stripped, underscores read as spaces.
func companyNameFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.ReplaceAll(name, "_", " ")
}
