package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

type Error string

const (
	ErrNoCredentials      = Error("no AWS credentials found")
	ErrExpiredCredentials = Error("AWS credentials have expired")
	ErrInvalidProfile     = Error("invalid AWS profile")
)

func (e Error) Error() string {
	return string(e)
}

// WrapAWSError turns API errors into readable errors for the given operation.
func WrapAWSError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied", "AccessDeniedException":
			return fmt.Errorf("access denied for %s: %w", operation, err)
		case "ExpiredToken", "ExpiredTokenException":
			return fmt.Errorf("%w: %s", ErrExpiredCredentials, operation)
		case "InvalidClientTokenId", "InvalidAccessKeyId":
			return fmt.Errorf("%w: %s", ErrNoCredentials, operation)
		case "NoSuchBucket":
			return fmt.Errorf("%s: bucket does not exist: %w", operation, err)
		default:
			return fmt.Errorf("%s failed: %s (%s)", operation, apiErr.ErrorMessage(), apiErr.ErrorCode())
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
