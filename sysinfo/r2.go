package sysinfo

import (
	"errors"

	"mediadock/models"
)

// ErrR2CredentialsIncomplete is returned when any of the four credential
// fields is empty.
var ErrR2CredentialsIncomplete = errors.New("all R2 credentials are required")

// R2Validator checks whether the configured R2 credentials are usable. A real
// implementation would issue a HeadBucket against the account endpoint; the
// stub only checks field presence.
type R2Validator interface {
	Validate(settings models.AppSettings) error
}

// StubR2Validator validates credential presence without any network I/O.
type StubR2Validator struct{}

// Validate fails iff at least one credential field is empty.
func (StubR2Validator) Validate(settings models.AppSettings) error {
	if settings.R2AccountID == "" ||
		settings.R2AccessKeyID == "" ||
		settings.R2SecretAccessKey == "" ||
		settings.R2BucketName == "" {
		return ErrR2CredentialsIncomplete
	}
	return nil
}
