package domain

import "time"

type Appointment struct {
	ID              string
	PatientName     string
	PatientPhone    string
	ClinicID        *int64
	DoctorName      string
	AppointmentDate time.Time
	AppointmentTime string
	Reason          string
	Status          string
	CreatedAt       time.Time
}

type Clinic struct {
	ID               int64
	Name             string
	Address          string
	Phone            string
	Email            string
	District         string
	Latitude         float64
	Longitude        float64
	HoursDescription string
	Specialties      []string
	IsFeatured       bool
	CreatedAt        time.Time
}
