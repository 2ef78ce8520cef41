package db

import "gorm.io/gorm"

type Repositories struct {
	Users            *UserRepository
	Entries          *EntryRepository
	Moods            *MoodRepository
	Affirmations     *AffirmationRepository
	UserAffirmations *UserAffirmationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(database),
		Entries:          NewEntryRepository(database),
		Moods:            NewMoodRepository(database),
		Affirmations:     NewAffirmationRepository(database),
		UserAffirmations: NewUserAffirmationRepository(database),
	}
}
