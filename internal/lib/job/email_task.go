package job

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

const (
	TaskWelcome       = "email:welcome"
	TaskPasswordReset = "email:password_reset"
)

type WelcomeEmailPayload struct {
	To        string `json:"to"`
	FirstName string `json:"first_name"`
}

type PasswordResetEmailPayload struct {
	To        string `json:"to"`
	ResetLink string `json:"reset_link"`
	ExpiresIn string `json:"expires_in"`
}

// NewWelcomeEmailTask builds a default-queue task, retried up to 3 times.
func NewWelcomeEmailTask(to, firstName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:        to,
		FirstName: firstName,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewPasswordResetEmailTask goes to the critical queue: the link is useless
// once it expires.
func NewPasswordResetEmailTask(to, resetLink string, expiresIn time.Duration) (*asynq.Task, error) {
	payload, err := json.Marshal(PasswordResetEmailPayload{
		To:        to,
		ResetLink: resetLink,
		ExpiresIn: expiresIn.String(),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskPasswordReset,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("critical"),
		asynq.Timeout(30*time.Second),
		asynq.Deadline(time.Now().Add(expiresIn)),
	), nil
}
