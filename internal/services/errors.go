package services

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidID            = errors.New("invalid id")
	ErrRegistryFinalized    = errors.New("registry is already finalized")
	ErrRegistryNotFinalized = errors.New("registry must be finalized before a raffle can run")
	ErrRegistryEmpty        = errors.New("registry has no owners")
	ErrRaffleNotSchedulable = errors.New("raffle is not in SCHEDULED state")
	ErrUnknownRandomSource  = errors.New("unknown random source")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAdminExists          = errors.New("admin user already exists")
	ErrWeakPassword         = errors.New("password must be at least 8 characters")
)
