package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrProviderNotFound     = errors.New("provider not found")
	ErrNoProviderAvailable  = errors.New("no provider available")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrClinicNotFound       = errors.New("clinic not found")
	ErrEmptySymptoms        = errors.New("symptom description is empty")
	ErrUnknownTopic         = errors.New("unknown education topic")
)
