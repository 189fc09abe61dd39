package repositories

import (
	"database/sql"
)

// Repositories holds all the repository instances
type Repositories struct {
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
