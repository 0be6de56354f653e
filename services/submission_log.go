package services

import (
	"context"
	"facttech_landing_go/models"
	"facttech_landing_go/services/leads"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SubmissionMeta carries the request details stored next to an attempt
type SubmissionMeta struct {
	SessionID string
	IPAddress string
	UserAgent string
	Locale    string
}

// SubmissionFilter narrows ListSubmissions. Zero values mean no filter.
type SubmissionFilter struct {
	Since   time.Time
	Until   time.Time
	Outcome string
	Limit   int
}

// RecordSubmission stores one resolved attempt. Pending outcomes are never
// resolved attempts and are refused.
func RecordSubmission(ctx context.Context, dbConn *gorm.DB, outcome leads.Outcome, meta SubmissionMeta) (*models.LeadSubmission, error) {
	if outcome.Kind == leads.OutcomePending {
		return nil, fmt.Errorf("cannot record a pending submission")
	}

	submission := &models.LeadSubmission{
		Name:         outcome.Lead.Name,
		Company:      outcome.Lead.Company,
		Email:        outcome.Lead.Email,
		Phone:        outcome.Lead.Phone,
		Industry:     outcome.Lead.Industry,
		Outcome:      string(outcome.Kind),
		ErrorMessage: outcomeErrorText(outcome),
		LatencyMS:    outcome.Duration.Milliseconds(),
		SessionID:    meta.SessionID,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Locale:       meta.Locale,
	}

	if err := dbConn.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}
	return submission, nil
}

// outcomeErrorText prefers the endpoint message and falls back to the error
func outcomeErrorText(outcome leads.Outcome) string {
	if outcome.Message != "" {
		return outcome.Message
	}
	if outcome.Err != nil {
		return outcome.Err.Error()
	}
	return ""
}

// ListSubmissions returns logged attempts, newest first
func ListSubmissions(ctx context.Context, dbConn *gorm.DB, filter SubmissionFilter) ([]models.LeadSubmission, error) {
	query := dbConn.WithContext(ctx).Model(&models.LeadSubmission{})

	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		query = query.Where("created_at < ?", filter.Until)
	}
	if filter.Outcome != "" {
		if !models.IsValidOutcome(filter.Outcome) {
			return nil, fmt.Errorf("unknown outcome filter %q", filter.Outcome)
		}
		query = query.Where("outcome = ?", filter.Outcome)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var submissions []models.LeadSubmission
	if err := query.Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// OutcomeCount is one row of CountSubmissionsByOutcome
type OutcomeCount struct {
	Outcome string
	Count   int64
}

// CountSubmissionsByOutcome aggregates the log for the export summary
func CountSubmissionsByOutcome(ctx context.Context, dbConn *gorm.DB, filter SubmissionFilter) ([]OutcomeCount, error) {
	query := dbConn.WithContext(ctx).Model(&models.LeadSubmission{})
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if !filter.Until.IsZero() {
		query = query.Where("created_at < ?", filter.Until)
	}

	var counts []OutcomeCount
	err := query.Select("outcome, COUNT(*) AS count").
		Group("outcome").
		Order("outcome").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}
	return counts, nil
}

// PruneSubmissions deletes attempts logged before the cutoff and returns how
// many rows went away
func PruneSubmissions(ctx context.Context, dbConn *gorm.DB, before time.Time) (int64, error) {
	result := dbConn.WithContext(ctx).Where("created_at < ?", before).Delete(&models.LeadSubmission{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune submissions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
