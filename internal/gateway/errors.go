package gateway

import (
	"errors"
	"fmt"
)

// Internal failure codes, recorded in logs and rendered to users through
// the generic translator message so gateway diagnostics never leak.
const (
	CodeUnknownError  = 9001
	CodeConfiguration = 9004
	CodeTransport     = 9008
	CodeEmptyResponse = 9010
	CodeVault         = 9012
)

// ValidationError signals a missing or malformed request field. The request
// is never sent to the gateway.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConfigurationError signals an unusable adapter configuration (unknown
// environment/protocol, missing credentials). Fatal, caught before any
// network call.
type ConfigurationError struct {
	Setting string
	Value   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s=%q", e.Setting, e.Value)
}

func NewConfigurationError(setting, value string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Value: value}
}

// TransportError signals a connectivity failure, timeout, or an unparseable
// response body. Retrying is the caller's decision; the adapter never
// retries internally.
type TransportError struct {
	Protocol   Protocol
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s transport error (status %d): %v", e.Protocol, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s transport error: %v", e.Protocol, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DeclinedError signals a well-formed response in which the issuer refused
// the charge. Not a system fault. Message is already translated.
type DeclinedError struct {
	Outcome *Outcome
	Message string
	Receipt string
}

func (e *DeclinedError) Error() string {
	return "transaction declined: " + e.Message
}

// GatewayError signals a gateway-side processing fault distinct from a
// decline, including a null or empty response body.
type GatewayError struct {
	Code    int
	Outcome *Outcome
	Message string
	Receipt string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (code %d): %s", e.Code, e.Message)
}

// VaultProvisioningError signals a failed step of the recurring-token
// sequence. The charge is never attempted. Already-created identifiers are
// reported, not rolled back; cleanup is a caller decision.
type VaultProvisioningError struct {
	Step      string
	ProfileID string
	AddressID string
	Err       error
}

func (e *VaultProvisioningError) Error() string {
	return fmt.Sprintf("vault provisioning failed at %s: %v", e.Step, e.Err)
}

func (e *VaultProvisioningError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}

func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var cErr *ConfigurationError
	ok := errors.As(err, &cErr)
	return cErr, ok
}

func IsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	ok := errors.As(err, &tErr)
	return tErr, ok
}

func IsDeclinedError(err error) (*DeclinedError, bool) {
	var dErr *DeclinedError
	ok := errors.As(err, &dErr)
	return dErr, ok
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var gErr *GatewayError
	ok := errors.As(err, &gErr)
	return gErr, ok
}

func IsVaultProvisioningError(err error) (*VaultProvisioningError, bool) {
	var vErr *VaultProvisioningError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
