package job

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.FirstName); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("successfully sent welcome email")

	return nil
}

func (j *JobService) handlePasswordResetEmailTask(ctx context.Context, t *asynq.Task) error {
	var p PasswordResetEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal password reset payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "password_reset").
		Str("to", p.To).
		Msg("processing password reset email task")

	if err := j.mailer.SendPasswordResetEmail(p.To, p.ResetLink, p.ExpiresIn); err != nil {
		j.logger.Error().
			Str("type", "password_reset").
			Str("to", p.To).
			Err(err).
			Msg("failed to send password reset email")
		return err
	}

	return nil
}
