package service

import (
	"context"

	"github.com/healthconnect-sl/healthconnect/internal/domain"
)

type ClinicStore interface {
	List(ctx context.Context) ([]domain.Clinic, error)
}

// videoCatalog is static configuration data loaded once at process
// start; there is no video upload path.
var videoCatalog = []domain.Video{
	{
		ID:    "1",
		Title: "Prenatal Care Basics",
		Description: "Essential prenatal care tips for a healthy pregnancy. Regular checkups, " +
			"nutrition, and warning signs.",
		VideoURL:        "https://cdn.healthconnect.sl/videos/prenatal-care-basics.mp4",
		ThumbnailURL:    "https://cdn.healthconnect.sl/thumbs/prenatal-care-basics.jpg",
		DurationMinutes: 15,
		Category:        "Prenatal Care",
		Language:        "English",
	},
	{
		ID:    "2",
		Title: "Nutrition During Pregnancy",
		Description: "What to eat and avoid during pregnancy for optimal health for you and " +
			"your baby.",
		VideoURL:        "https://cdn.healthconnect.sl/videos/pregnancy-nutrition.mp4",
		ThumbnailURL:    "https://cdn.healthconnect.sl/thumbs/pregnancy-nutrition.jpg",
		DurationMinutes: 20,
		Category:        "Nutrition",
		Language:        "English",
	},
	{
		ID:              "3",
		Title:           "Safe Exercises for Pregnant Women",
		Description:     "Gentle exercises to stay fit during pregnancy, safe for each trimester.",
		VideoURL:        "https://cdn.healthconnect.sl/videos/safe-pregnancy-exercise.mp4",
		ThumbnailURL:    "https://cdn.healthconnect.sl/thumbs/safe-pregnancy-exercise.jpg",
		DurationMinutes: 18,
		Category:        "Exercise",
		Language:        "English",
	},
	{
		ID:              "4",
		Title:           "Newborn Care Essentials",
		Description:     "Caring for your newborn: breastfeeding, warmth, and danger signs.",
		VideoURL:        "https://cdn.healthconnect.sl/videos/newborn-care.mp4",
		ThumbnailURL:    "https://cdn.healthconnect.sl/thumbs/newborn-care.jpg",
		DurationMinutes: 22,
		Category:        "Child Health",
		Language:        "English",
	},
}

// DirectoryService serves the clinic directory and the static education
// video catalog.
type DirectoryService struct {
	clinics ClinicStore
}

func NewDirectoryService(clinics ClinicStore) *DirectoryService {
	return &DirectoryService{clinics: clinics}
}

func (s *DirectoryService) Clinics(ctx context.Context) ([]domain.Clinic, error) {
	return s.clinics.List(ctx)
}

func (s *DirectoryService) Videos() []domain.Video {
	return videoCatalog
}
